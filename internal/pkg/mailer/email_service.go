package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendWelcome(toEmail, name string) error
	SendResetToken(toEmail, token string) error
	SendRequestAnswered(toEmail, name, requestType, statusLabel, response string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}
	return nil
}

func (s *emailService) SendWelcome(toEmail, name string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Bem-vindo, %s!</h2>
			<p>Seu cadastro foi realizado com sucesso.</p>
			<p>Envie seus documentos na plataforma para liberar todas as funcionalidades.</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Acessar plataforma</a>
		</div>
	`, name, s.frontendURL)

	return s.send(toEmail, "Bem-vindo", body)
}

func (s *emailService) SendResetToken(toEmail, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Redefinição de senha</h2>
			<p>Você solicitou a redefinição da sua senha. Clique no botão abaixo para continuar:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Redefinir senha</a>
			<p>Ou copie este link:</p>
			<p>%s</p>
			<p>Este link expira em 1 hora.</p>
			<p>Se você não solicitou isto, ignore este email.</p>
		</div>
	`, resetLink, resetLink)

	return s.send(toEmail, "Redefinição de senha", body)
}

func (s *emailService) SendRequestAnswered(toEmail, name, requestType, statusLabel, response string) error {
	responseBlock := ""
	if response != "" {
		responseBlock = fmt.Sprintf("<p><strong>Resposta:</strong> %s</p>", response)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Olá, %s</h2>
			<p>Sua solicitação (%s) foi respondida.</p>
			<p><strong>Status:</strong> %s</p>
			%s
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Ver detalhes</a>
		</div>
	`, name, requestType, statusLabel, responseBlock, s.frontendURL)

	return s.send(toEmail, "Sua solicitação foi respondida", body)
}
