package commands

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"cuponx-backend/internal/domain/offer"
	"cuponx-backend/internal/usecase/shared"
)

var actionMailTmpl = template.Must(template.New("action").Parse(`<div style="font-family: Arial, Helvetica, sans-serif; line-height: 1.5; color: #111;">
  <h2 style="margin: 0 0 12px;">{{.Title}}</h2>
  <p style="margin: 0 0 16px;">{{.Intro}}</p>
  <p style="margin: 0 0 16px;"><a href="{{.ActionURL}}" style="color: #0b57d0; text-decoration: underline;">{{.ActionText}}</a></p>
  <p style="margin: 0; color: #444;">{{.Outro}}</p>
</div>`))

var purchaseMailTmpl = template.Must(template.New("purchase").Parse(`<div style="font-family: Arial, Helvetica, sans-serif; line-height: 1.5; color: #111;">
  <h2 style="margin: 0 0 12px;">Compra confirmada</h2>
  <p style="margin: 0 0 16px;">Oferta: <strong>{{.OfferTitle}}</strong> ({{.MerchantName}})</p>
  <p style="margin: 0 0 8px;">Tus códigos:</p>
  <ul>{{range .Codes}}<li><code>{{.}}</code></li>{{end}}</ul>
  <p style="margin: 0; color: #444;">Total pagado: {{.Total}}. Presenta tu DUI al canjear.</p>
</div>`))

type actionMail struct {
	Title      string
	Intro      string
	ActionText string
	ActionURL  string
	Outro      string
}

func verificationMail(to, verifyURL string) *shared.Mail {
	intro := "Haz clic en el siguiente enlace para verificar tu cuenta:"
	return &shared.Mail{
		To:      to,
		Subject: "Verifica tu cuenta - CuponX",
		Text:    intro + " " + verifyURL,
		HTML: renderMail(actionMailTmpl, actionMail{
			Title:      "Verificación de cuenta",
			Intro:      intro,
			ActionText: "Verificar cuenta",
			ActionURL:  verifyURL,
			Outro:      "Si tú no solicitaste esta cuenta, puedes ignorar este correo.",
		}),
	}
}

func resetMail(to, resetURL string) *shared.Mail {
	return &shared.Mail{
		To:      to,
		Subject: "Recuperación de contraseña - CuponX",
		Text:    "Haz clic en el siguiente enlace para restablecer tu contraseña (válido 15 min): " + resetURL,
		HTML: renderMail(actionMailTmpl, actionMail{
			Title:      "Recuperación de contraseña",
			Intro:      "Haz clic en el siguiente enlace para restablecer tu contraseña:",
			ActionText: "Restablecer contraseña",
			ActionURL:  resetURL,
			Outro:      "Este enlace expira en 15 minutos. Si tú no lo solicitaste, ignora este correo.",
		}),
	}
}

func purchaseMail(to string, o *offer.Offer, codes []string, total offer.Money) *shared.Mail {
	data := struct {
		OfferTitle   string
		MerchantName string
		Codes        []string
		Total        string
	}{o.Title(), o.MerchantName(), codes, "$" + total.String()}

	return &shared.Mail{
		To:      to,
		Subject: "Tus cupones - CuponX",
		Text: fmt.Sprintf("Compraste %d cupón(es) de \"%s\": %s. Total pagado: $%s.",
			len(codes), o.Title(), strings.Join(codes, ", "), total.String()),
		HTML: renderMail(purchaseMailTmpl, data),
	}
}

// renderMail falls back to an empty body; the text part is always sent.
func renderMail(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.Warn("failed to render mail template", "template", tmpl.Name(), "error", err.Error())
		return ""
	}
	return buf.String()
}
