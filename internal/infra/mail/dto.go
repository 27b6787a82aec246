package mail

type DownloadEmailData struct {
	ProductName string
	DownloadURL string
	PackageSize string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
