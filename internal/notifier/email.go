package notifier

import (
	"fmt"
	"net/smtp"
	"strings"

	"approval-tracker/internal/config"
	"approval-tracker/internal/models"
)

// EmailNotifier envía el aviso de nueva solicitud al aprobador por SMTP.
// Mejor esfuerzo: el motor descarta el resultado y solo lo registra en el log.
type EmailNotifier struct {
	host         string
	port         int
	user         string
	password     string
	from         string
	fallbackTo   string
	dashboardURL string
	enabled      bool
}

func New(cfg *config.Config) *EmailNotifier {
	return &EmailNotifier{
		host:         cfg.SMTPHost,
		port:         cfg.SMTPPort,
		user:         cfg.SMTPUser,
		password:     cfg.SMTPPass,
		from:         cfg.SMTPFrom,
		fallbackTo:   cfg.NotifyFallbackEmail,
		dashboardURL: cfg.FrontendURL,
		enabled:      cfg.SMTPHost != "" && cfg.SMTPPort > 0 && cfg.SMTPFrom != "",
	}
}

func (n *EmailNotifier) IsEnabled() bool { return n.enabled }

func (n *EmailNotifier) Notify(req models.Request, approver models.User) error {
	if !n.enabled {
		return fmt.Errorf("smtp no configurado")
	}

	to, err := n.recipient(approver)
	if err != nil {
		return err
	}

	msg := buildMessage(n.from, to, n.dashboardURL, req)

	var auth smtp.Auth
	if n.user != "" {
		auth = smtp.PlainAuth("", n.user, n.password, n.host)
	}

	addr := fmt.Sprintf("%s:%d", n.host, n.port)
	if err := smtp.SendMail(addr, auth, n.from, []string{to}, msg); err != nil {
		return fmt.Errorf("envío de correo a %s fallido: %w", to, err)
	}
	return nil
}

// recipient prefiere el email del aprobador; si no tiene, cae al
// destinatario de respaldo configurado (vacío = sin respaldo).
func (n *EmailNotifier) recipient(approver models.User) (string, error) {
	to := strings.TrimSpace(approver.Email)
	if to == "" {
		to = n.fallbackTo
	}
	if to == "" || !strings.Contains(to, "@") {
		return "", fmt.Errorf("el aprobador %s no tiene email válido y no hay destinatario de respaldo", approver.Username)
	}
	return to, nil
}

func buildMessage(from, to, dashboardURL string, req models.Request) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: NUEVA SOLICITUD - %s\r\n", req.Code)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")

	b.WriteString("<h2>Nueva solicitud creada</h2>")
	b.WriteString("<p><strong>Sistema de Aprobaciones</strong></p>")
	b.WriteString("<table>")
	fmt.Fprintf(&b, "<tr><td>ID:</td><td><strong>%s</strong></td></tr>", req.Code)
	fmt.Fprintf(&b, "<tr><td>Título:</td><td>%s</td></tr>", req.Title)
	fmt.Fprintf(&b, "<tr><td>Tipo:</td><td>%s</td></tr>", req.RequestType)
	fmt.Fprintf(&b, "<tr><td>Prioridad:</td><td>%s</td></tr>", strings.ToUpper(string(req.Priority)))
	fmt.Fprintf(&b, "<tr><td>Solicitante:</td><td>%s</td></tr>", req.RequesterName)
	b.WriteString("</table>")
	if dashboardURL != "" {
		fmt.Fprintf(&b, `<p><a href="%s">Ir al Dashboard</a></p>`, dashboardURL)
	}
	b.WriteString("<p>Esta es una notificación automática del Sistema de Aprobaciones.</p>")

	return []byte(b.String())
}
