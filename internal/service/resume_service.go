package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"placement_prep_backend/internal/model"
	"placement_prep_backend/internal/repository"
	"placement_prep_backend/internal/util"
)

// maxResumeSize caps uploads at 5 MB.
const maxResumeSize = 5 << 20

// Content sniffing accepts PDF, docx (zip container) and legacy doc files,
// which http.DetectContentType reports as octet-stream. Text files renamed
// to a document extension are rejected.
var allowedResumeMimes = []string{util.MimePDF, "application/zip", util.MimeOctetStream}

type ResumeService struct {
	ResumeRepo *repository.ResumeRepository
	Storage    *StorageService
}

func NewResumeService(resumeRepo *repository.ResumeRepository, storage *StorageService) *ResumeService {
	return &ResumeService{ResumeRepo: resumeRepo, Storage: storage}
}

// Upload stores the file and replaces the user's resume record.
func (s *ResumeService) Upload(ctx context.Context, userID uint, header *multipart.FileHeader) (*model.Resume, error) {
	if header.Size > maxResumeSize {
		return nil, fmt.Errorf("resume exceeds %d MB limit", maxResumeSize>>20)
	}
	if !util.HasAllowedExtension(header.Filename, util.AllowedResumeExtensions) {
		return nil, fmt.Errorf("unsupported resume format %q", filepath.Ext(header.Filename))
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sniffed, err := util.ValidateMimeType(file, allowedResumeMimes)
	if err != nil {
		return nil, fmt.Errorf("unsupported resume content: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = sniffed
	}

	storedName := fmt.Sprintf("resumes/%d/%s", userID, filepath.Base(header.Filename))
	url, err := s.Storage.Upload(ctx, storedName, file, header.Size, contentType)
	if err != nil {
		return nil, err
	}

	resume := &model.Resume{
		UserID:   userID,
		Filename: header.Filename,
		URL:      url,
		Size:     header.Size,
	}
	if err := s.ResumeRepo.Save(resume); err != nil {
		return nil, err
	}
	return resume, nil
}

func (s *ResumeService) Get(userID uint) (*model.Resume, error) {
	return s.ResumeRepo.FindByUser(userID)
}
