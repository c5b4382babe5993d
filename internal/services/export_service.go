package services

import (
	"context"
	"fmt"

	"github.com/gitchest/gitchest/internal/repositories"
	"github.com/xuri/excelize/v2"
)

// ExportService builds spreadsheet reports of the tracked users.
type ExportService struct {
	userRepo *repositories.UserRepository
}

func NewExportService(userRepo *repositories.UserRepository) *ExportService {
	return &ExportService{
		userRepo: userRepo,
	}
}

// ExportUsers renders all tracked users into a workbook with one row per
// user. The caller owns the returned file and must close it.
func (s *ExportService) ExportUsers(ctx context.Context) (*excelize.File, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Users"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	headers := []string{"ID", "User", "Platform", "Created At", "Updated At"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	for row, user := range users {
		values := []interface{}{user.ID, user.Username, user.Platform, user.CreatedAt, user.UpdatedAt}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("writing user row: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("writing user row: %w", err)
			}
		}
	}

	return f, nil
}
