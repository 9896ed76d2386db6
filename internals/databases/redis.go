package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

// ConnectRedis menyiapkan client Redis untuk cache draft tagihan.
// Kalau REDIS_ADDR kosong / tidak bisa konek, RDB dibiarkan nil dan
// fitur draft otomatis nonaktif (bukan fatal).
func ConnectRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR belum diset, draft tagihan tidak dicache.")
		return
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("❌ Gagal konek Redis: %v", err)
		return
	}

	RDB = rdb
	log.Println("✅ Redis connected.")
}
