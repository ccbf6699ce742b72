package libs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"pos-kasir/services"
	"pos-kasir/utils"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = smtpUser
	}

	return &EmailService{
		dialer: gomail.NewDialer(smtpHost, port, smtpUser, smtpPass),
		from:   from,
	}, nil
}

// SendDailyReport mails today's sales summary and the top products.
func (s *EmailService) SendDailyReport(toEmail, appName string, summary services.SalesSummary, topProducts []services.ProductSales) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Laporan Penjualan %s - %s", time.Now().Format("02 January 2006"), appName))

	var rows strings.Builder
	for i, p := range topProducts {
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding:6px 12px;">%d</td><td style="padding:6px 12px;">%s</td><td style="padding:6px 12px;text-align:right;">%d</td></tr>`,
			i+1, p.Name, p.Quantity))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
    <h2 style="color: #333;">Laporan Penjualan Harian</h2>
    <p>Total penjualan: <strong>%s</strong></p>
    <p>Jumlah transaksi: <strong>%d</strong></p>
    <p>Rata-rata transaksi: <strong>%s</strong></p>
    <h3 style="color: #333;">Produk Terlaris</h3>
    <table style="border-collapse: collapse; width: 100%%;">
      <tr style="background-color: #f97316; color: white;">
        <th style="padding:6px 12px;">#</th>
        <th style="padding:6px 12px;">Produk</th>
        <th style="padding:6px 12px;">Terjual</th>
      </tr>
      %s
    </table>
    <p style="color: #666; font-size: 12px; margin-top: 30px;">%s</p>
  </div>
</body>
</html>`,
		utils.FormatCurrency(summary.TotalSales),
		summary.TransactionCount,
		utils.FormatCurrency(int(summary.AverageTransaction)),
		rows.String(),
		appName,
	)

	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}
