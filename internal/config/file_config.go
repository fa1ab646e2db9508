package config

// FileRule bounds one kind of uploaded attachment.
type FileRule struct {
	Field      string
	Dir        string
	MaxSize    int64
	Extensions []string
}

var (
	ResumeFileRule = FileRule{
		Field:      "resume",
		Dir:        "resumes",
		MaxSize:    5 * 1024 * 1024,
		Extensions: []string{"pdf", "doc", "docx"},
	}
	ApplicationResumeFileRule = FileRule{
		Field:      "resume",
		Dir:        "applications/resumes",
		MaxSize:    5 * 1024 * 1024,
		Extensions: []string{"pdf", "doc", "docx"},
	}
	PortfolioFileRule = FileRule{
		Field:      "portfolio",
		Dir:        "portfolios",
		MaxSize:    10 * 1024 * 1024,
		Extensions: []string{"pdf", "zip", "jpg", "jpeg", "png"},
	}
	ProfilePictureFileRule = FileRule{
		Field:      "picture",
		Dir:        "profile_pictures",
		MaxSize:    5 * 1024 * 1024,
		Extensions: []string{"jpg", "jpeg", "png"},
	}
)
