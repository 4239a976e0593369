package smtp

import "fmt"

// VerificationSubject is the subject line of the address confirmation email.
const VerificationSubject = "メールアドレスの確認"

// VerificationEmailBody builds the plain-text body of the address
// confirmation email. The link points at the frontend, which calls the API
// with the embedded token; it stays valid for 24 hours.
func VerificationEmailBody(frontendURL, token string) string {
	verificationURL := fmt.Sprintf("%s/verify-email/%s", frontendURL, token)
	return fmt.Sprintf(
		"こんにちは、\n\n以下のリンクをクリックしてメールアドレスを確認してください:\n\n%s\n\nこのリンクは24時間有効です。\n\nよろしくお願いします。",
		verificationURL,
	)
}
