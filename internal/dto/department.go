package dto

import "github.com/Sneha051188/employee-management-system/internal/models"

type DepartmentDto struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Head        string `json:"head"`
}

func ToDepartmentDto(department *models.Department) *DepartmentDto {
	if department == nil {
		return nil
	}
	return &DepartmentDto{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
		Head:        department.Head,
	}
}

func ToDepartment(in *DepartmentDto) *models.Department {
	if in == nil {
		return nil
	}
	return &models.Department{
		Name:        in.Name,
		Description: in.Description,
		Head:        in.Head,
	}
}
