package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseDraft is an educator's unsubmitted course, kept locally until it is
// sent to the backend.
type CourseDraft struct {
	gorm.Model
	DraftID       string         `json:"draft_id" gorm:"uniqueIndex;size:36;not null"`
	EducatorID    string         `json:"educator_id" gorm:"index;not null"`
	Title         string         `json:"title" gorm:"default:''"`
	Content       datatypes.JSON `json:"content"`
	ThumbnailPath string         `json:"thumbnail_path" gorm:"default:''"`
}
