// file: internals/features/school/students/service/family_resolver.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "sekolahku_backend/internals/features/school/students/model"
)

// FindFamily mengambil satu siswa + seluruh anggota keluarganya:
// wali sama DAN session sama. Siswa yang diarsip (soft delete) tidak ikut.
// Siswa beda session TIDAK pernah digabung walau nomor walinya sama.
func FindFamily(ctx context.Context, db *gorm.DB, studentID uuid.UUID) (studentModel.Student, []studentModel.Student, error) {
	var primary studentModel.Student
	if err := db.WithContext(ctx).
		First(&primary, "student_id = ?", studentID).Error; err != nil {
		return studentModel.Student{}, nil, err
	}

	var members []studentModel.Student
	if err := db.WithContext(ctx).
		Where("student_guardian_id = ? AND student_session = ?",
			primary.StudentGuardianID, primary.StudentSession).
		Order("student_created_at ASC").
		Find(&members).Error; err != nil {
		return studentModel.Student{}, nil, err
	}

	return primary, members, nil
}
