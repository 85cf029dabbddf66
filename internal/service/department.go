package service

import (
	"context"

	"warcat/internal/model"
	"warcat/internal/repository"
)

// DepartmentService maintains the department directory.
type DepartmentService struct {
	departments repository.IDepartmentRepository
}

func NewDepartmentService(departments repository.IDepartmentRepository) *DepartmentService {
	return &DepartmentService{departments: departments}
}

func (s *DepartmentService) Create(ctx context.Context, name string) (*model.Department, error) {
	return s.departments.Create(ctx, &model.Department{Name: name})
}

func (s *DepartmentService) List(ctx context.Context) ([]model.Department, error) {
	return s.departments.FindAll(ctx)
}
