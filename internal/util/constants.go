package util

const (
	DateFormat = "2006-01-02"
)

const (
	MimePDF         = "application/pdf"
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedResumeExtensions = []string{".pdf", ".doc", ".docx"}
)
