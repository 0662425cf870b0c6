package upload

import "strings"

const (
	KindClass   = "class"
	KindTrainer = "trainer"
	KindUser    = "user"

	DefaultExpiresSeconds = 900
	MaxExpiresSeconds     = 3600
	DefaultContentType    = "application/octet-stream"
	MaxBatchItems         = 10
)

type SignInput struct {
	Kind           string `json:"kind" validate:"required,oneof=class trainer user"`
	FileName       string `json:"fileName" validate:"required"`
	ContentType    string `json:"contentType,omitempty"`
	ExpiresSeconds int64  `json:"expiresSeconds,omitempty"`
}

func (in *SignInput) Trim() {
	in.Kind = strings.ToLower(strings.TrimSpace(in.Kind))
	in.FileName = strings.TrimSpace(in.FileName)
	in.ContentType = strings.TrimSpace(in.ContentType)
}

type SignedURL struct {
	URL        string `json:"url"`
	Method     string `json:"method"`
	ObjectPath string `json:"objectPath"`
	ExpiresAt  int64  `json:"expiresAt"`
}
