package usecase

type DownloadMailer interface {
	SendDownloadLink(to, downloadURL string) error
}

// CredentialChecker decides whether a presented admin secret is valid.
type CredentialChecker interface {
	Enabled() bool
	Check(secret string) bool
}
