package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"mecanica_os/internal/domain"
	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/domain/lineitem"
	"mecanica_os/internal/domain/status"
	"mecanica_os/internal/usecase/interfaces"
	"mecanica_os/pkg/logger"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMonth      = errors.New("invalid month, expected YYYY-MM")
	ErrNoReportRecipient = fmt.Errorf("%w: no report recipients configured", domain.ErrReportDispatchFailure)
)

const (
	monthLayout               = "2006-01"
	defaultNearDeadlineWindow = 48 * time.Hour
)

// Report dispatch outcomes recorded in metrics.
const (
	DispatchOutcomeSuccess = "success"
	DispatchOutcomeFailure = "failure"
)

// IReportDispatcher is the job fired by the report scheduler.
type IReportDispatcher interface {
	GenerateAndSendReport(ctx context.Context) error
}

// IReportUseCase builds the operational dashboard and the daily e-mail.
type IReportUseCase interface {
	IReportDispatcher
	NearDeadline(ctx context.Context) ([]entities.EnrichedOrder, error)
	PastDeadline(ctx context.Context) ([]entities.EnrichedOrder, error)
	MonthlyBilling(ctx context.Context, month string) (entities.MonthlyBilling, error)
	BuildReport(ctx context.Context) (entities.OperationalReport, error)
}

// ReportOptions tunes report content. Zero values fall back to defaults.
type ReportOptions struct {
	Recipients         []string
	NearDeadlineWindow time.Duration
	Location           *time.Location
}

type ReportUseCase struct {
	orders   interfaces.IServiceOrderRepository
	enricher IOrderQueryUseCase
	sender   interfaces.IReportSender
	metrics  interfaces.IOperationalMetrics
	log      *logger.Logger

	recipients []string
	window     time.Duration
	loc        *time.Location
	now        func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	orders interfaces.IServiceOrderRepository,
	enricher IOrderQueryUseCase,
	sender interfaces.IReportSender,
	metrics interfaces.IOperationalMetrics,
	log *logger.Logger,
	opts ReportOptions,
) *ReportUseCase {
	if opts.NearDeadlineWindow <= 0 {
		opts.NearDeadlineWindow = defaultNearDeadlineWindow
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	var recipients []string
	for _, r := range opts.Recipients {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	return &ReportUseCase{
		orders:     orders,
		enricher:   enricher,
		sender:     sender,
		metrics:    metrics,
		log:        log.Component("report"),
		recipients: recipients,
		window:     opts.NearDeadlineWindow,
		loc:        opts.Location,
		now:        time.Now,
	}
}

// NearDeadline lists open orders whose deadline falls within the configured
// window from now, earliest first.
func (u *ReportUseCase) NearDeadline(ctx context.Context) ([]entities.EnrichedOrder, error) {
	now := u.now()
	orders, err := u.orders.ListWithDeadlineBefore(ctx, now.Add(u.window))
	if err != nil {
		return nil, fmt.Errorf("list near deadline: %w", err)
	}
	return u.enrichOpen(ctx, orders, func(o entities.ServiceOrder) bool { return !o.Overdue(now) }), nil
}

// PastDeadline lists open orders whose deadline already passed, earliest first.
func (u *ReportUseCase) PastDeadline(ctx context.Context) ([]entities.EnrichedOrder, error) {
	now := u.now()
	orders, err := u.orders.ListWithDeadlineBefore(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list past deadline: %w", err)
	}
	return u.enrichOpen(ctx, orders, func(o entities.ServiceOrder) bool { return o.Overdue(now) }), nil
}

func (u *ReportUseCase) enrichOpen(ctx context.Context, orders []entities.ServiceOrder, keep func(entities.ServiceOrder) bool) []entities.EnrichedOrder {
	var open []entities.ServiceOrder
	for _, o := range orders {
		if o.Deadline == nil || o.Status.Terminal() || !keep(o) {
			continue
		}
		open = append(open, o)
	}
	sort.SliceStable(open, func(i, j int) bool { return open[i].Deadline.Before(*open[j].Deadline) })
	return u.enricher.Enrich(ctx, open)
}

// MonthlyBilling aggregates the non-canceled orders that entered during month
// (YYYY-MM, in the report location). An empty month means the current one.
func (u *ReportUseCase) MonthlyBilling(ctx context.Context, month string) (entities.MonthlyBilling, error) {
	month = strings.TrimSpace(month)
	if month == "" {
		month = u.now().In(u.loc).Format(monthLayout)
	}
	from, err := time.ParseInLocation(monthLayout, month, u.loc)
	if err != nil {
		return entities.MonthlyBilling{}, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	to := from.AddDate(0, 1, 0)

	orders, err := u.orders.ListByEntryDateRange(ctx, from, to)
	if err != nil {
		return entities.MonthlyBilling{}, fmt.Errorf("list orders of %s: %w", month, err)
	}

	mb := entities.MonthlyBilling{
		Month:         month,
		TotalGeneral:  decimal.Zero,
		TotalProducts: decimal.Zero,
		TotalCost:     decimal.Zero,
		TotalPaid:     decimal.Zero,
		TotalOpen:     decimal.Zero,
	}
	for _, o := range orders {
		if o.Status == status.Canceled {
			continue
		}
		total := o.AuthoritativeTotal()
		mb.OrderCount++
		mb.TotalGeneral = mb.TotalGeneral.Add(total)
		mb.TotalProducts = mb.TotalProducts.Add(o.TotalValueGeneral)
		mb.TotalCost = mb.TotalCost.Add(lineitem.TotalCost(o.LineItems))
		if o.Paid {
			mb.TotalPaid = mb.TotalPaid.Add(total)
		} else {
			mb.TotalOpen = mb.TotalOpen.Add(total)
		}
	}
	return mb, nil
}

func (u *ReportUseCase) BuildReport(ctx context.Context) (entities.OperationalReport, error) {
	near, err := u.NearDeadline(ctx)
	if err != nil {
		return entities.OperationalReport{}, err
	}
	past, err := u.PastDeadline(ctx)
	if err != nil {
		return entities.OperationalReport{}, err
	}
	monthly, err := u.MonthlyBilling(ctx, "")
	if err != nil {
		return entities.OperationalReport{}, err
	}
	return entities.OperationalReport{
		GeneratedAt:   u.now().In(u.loc),
		NearDeadline:  near,
		PastDeadline:  past,
		MonthlyReport: monthly,
	}, nil
}

// GenerateAndSendReport builds the report and sends one e-mail per recipient.
// Every recipient is attempted; the returned error wraps
// ErrReportDispatchFailure when any of them failed.
func (u *ReportUseCase) GenerateAndSendReport(ctx context.Context) (err error) {
	defer func() {
		outcome := DispatchOutcomeSuccess
		if err != nil {
			outcome = DispatchOutcomeFailure
		}
		if u.metrics != nil {
			u.metrics.ObserveReportDispatch(outcome)
		}
	}()

	if len(u.recipients) == 0 {
		u.log.Warn().Msg("report not sent: no recipients")
		return ErrNoReportRecipient
	}

	report, err := u.BuildReport(ctx)
	if err != nil {
		u.log.Error().Err(err).Msg("build report failed")
		return fmt.Errorf("%w: %w", domain.ErrReportDispatchFailure, err)
	}

	subject := fmt.Sprintf("Relatório operacional %s", report.GeneratedAt.Format("02/01/2006"))
	body := RenderReportText(report)

	var errs []error
	for _, to := range u.recipients {
		if sendErr := u.sender.Send(ctx, interfaces.ReportEmail{To: to, Subject: subject, Body: body}); sendErr != nil {
			u.log.Error().Err(sendErr).Str("to", to).Msg("report e-mail not sent")
			errs = append(errs, fmt.Errorf("%s: %w", to, sendErr))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrReportDispatchFailure, errors.Join(errs...))
	}

	u.log.Info().
		Int("recipients", len(u.recipients)).
		Int("near_deadline", len(report.NearDeadline)).
		Int("past_deadline", len(report.PastDeadline)).
		Msg("report sent")
	return nil
}

// RenderReportText is the plain-text e-mail body.
func RenderReportText(r entities.OperationalReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Relatório operacional gerado em %s\n\n", r.GeneratedAt.Format("02/01/2006 15:04"))

	writeOrders(&b, "O.S. próximas do prazo", r.NearDeadline)
	writeOrders(&b, "O.S. com prazo vencido", r.PastDeadline)

	m := r.MonthlyReport
	fmt.Fprintf(&b, "Faturamento do mês %s\n", m.Month)
	fmt.Fprintf(&b, "  O.S. emitidas: %d\n", m.OrderCount)
	fmt.Fprintf(&b, "  Faturado: %s\n", formatBRL(m.TotalGeneral))
	fmt.Fprintf(&b, "  Peças e serviços: %s\n", formatBRL(m.TotalProducts))
	fmt.Fprintf(&b, "  Custos: %s\n", formatBRL(m.TotalCost))
	fmt.Fprintf(&b, "  Recebido: %s\n", formatBRL(m.TotalPaid))
	fmt.Fprintf(&b, "  Em aberto: %s\n", formatBRL(m.TotalOpen))
	return b.String()
}

func writeOrders(b *strings.Builder, title string, orders []entities.EnrichedOrder) {
	fmt.Fprintf(b, "%s (%d)\n", title, len(orders))
	if len(orders) == 0 {
		b.WriteString("  nenhuma\n\n")
		return
	}
	for _, o := range orders {
		deadline := PlaceholderAbsent
		if o.Deadline != nil {
			deadline = o.Deadline.Format("02/01/2006 15:04")
		}
		fmt.Fprintf(b, "  %s | %s | %s %s | %s | prazo %s | %s\n",
			o.Code, o.ClientName, o.VehicleDescription, o.VehiclePlate, o.StatusLabel, deadline, formatBRL(o.Value))
	}
	b.WriteString("\n")
}

func formatBRL(d decimal.Decimal) string {
	return "R$ " + strings.Replace(d.StringFixed(2), ".", ",", 1)
}
