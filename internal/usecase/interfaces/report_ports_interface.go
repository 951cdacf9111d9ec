package interfaces

import (
	"context"

	"mecanica_os/internal/domain/entities"

	"github.com/robfig/cron/v3"
)

// ReportEmail is one message handed to the mail transport.
type ReportEmail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// IReportSender delivers report e-mails. The transport (queue, SMTP relay) is
// the implementation's concern.
type IReportSender interface {
	Send(ctx context.Context, email ReportEmail) error
}

// IOrderPDFGenerator renders the printable O.S. document.
type IOrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order entities.ServiceOrder, client entities.Client, vehicle entities.Vehicle) ([]byte, error)
}

// ICronEngine is the timer facility that fires the daily report job.
// *cron.Cron satisfies it.
type ICronEngine interface {
	AddFunc(spec string, cmd func()) (cron.EntryID, error)
	Remove(id cron.EntryID)
}
