package model

type Image struct {
	ImageID    int    `json:"imageID"`
	ImageURL   string `json:"imageURL"`
	ReportID   int    `json:"reportID"`
	UploadedAt string `json:"uploadedAt,omitempty"`
}

type AttachImageRequest struct {
	ImageURL string `json:"imageURL" validate:"required,url"`
}
