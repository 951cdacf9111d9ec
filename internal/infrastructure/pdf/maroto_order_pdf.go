// Package pdf renders the printable service order (O.S.) document.
//
// Layout (A4):
//
//	header:  O.S. code and number | entry date, deadline, status
//	parties: client | vehicle and plate
//	table:   Código | Produto | Qtd | Preço | Total
//	totals:  total geral, desconto, total com desconto
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase"
	"mecanica_os/internal/usecase/interfaces"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateLayout = "02/01/2006"

// MarotoOrderPDF implements interfaces.IOrderPDFGenerator with maroto v2.
type MarotoOrderPDF struct {
	loc *time.Location
}

var _ interfaces.IOrderPDFGenerator = (*MarotoOrderPDF)(nil)

// NewMarotoOrderPDF builds the generator. Dates are printed in loc.
func NewMarotoOrderPDF(loc *time.Location) *MarotoOrderPDF {
	if loc == nil {
		loc = time.UTC
	}
	return &MarotoOrderPDF{loc: loc}
}

func (g *MarotoOrderPDF) GenerateOrderPDF(_ context.Context, order entities.ServiceOrder, client entities.Client, vehicle entities.Vehicle) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ordem de Serviço "+order.Code, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(order, client, vehicle))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(lineItemRows(order.LineItems)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate order document: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoOrderPDF) headerRow(o entities.ServiceOrder) core.Row {
	deadline := usecase.PlaceholderAbsent
	if o.Deadline != nil {
		deadline = o.Deadline.In(g.loc).Format(dateLayout)
	}
	entry := usecase.PlaceholderAbsent
	if !o.EntryDate.IsZero() {
		entry = o.EntryDate.In(g.loc).Format(dateLayout)
	}

	return row.New(20).Add(
		col.New(6).Add(
			text.New("ORDEM DE SERVIÇO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Código: %s   |   Nº %s", o.Code, usecase.OSNumber(o.Code)), props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("Entrada: "+entry, props.Text{Size: 8, Align: align.Right, Top: 1}),
			text.New("Prazo: "+deadline, props.Text{Size: 8, Align: align.Right, Top: 6}),
			text.New("Status: "+o.Status.Label(), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 12, Color: colorPrimary,
			}),
		),
	)
}

func partiesRow(o entities.ServiceOrder, client entities.Client, vehicle entities.Vehicle) core.Row {
	clientName := usecase.PlaceholderClientNotFound
	if client.ID != "" {
		clientName = nonEmpty(client.Name, usecase.PlaceholderClientNoName)
	}
	vehicleDesc := usecase.PlaceholderVehicleNotFound
	if vehicle.ID != "" {
		vehicleDesc = fmt.Sprintf("%s   |   Placa: %s",
			nonEmpty(vehicle.Name, usecase.PlaceholderAbsent),
			nonEmpty(vehicle.LicensePlate, usecase.PlaceholderAbsent))
	}
	if o.VehicleID == "" {
		vehicleDesc = usecase.PlaceholderAbsent
	}

	return row.New(14).Add(
		col.New(6).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(clientName, props.Text{Size: 9, Top: 6}),
		),
		col.New(6).Add(
			text.New("VEÍCULO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(vehicleDesc, props.Text{Size: 9, Top: 6}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Produto / Serviço", 4, align.Left),
		h("Qtd", 1, align.Center),
		h("Preço", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func lineItemRows(items []entities.LineItem) []core.Row {
	if len(items) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Nenhum item", props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
		))}
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(nonEmpty(it.Code, usecase.PlaceholderAbsent), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(nonEmpty(it.Name, usecase.PlaceholderAbsent), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.Itoa(it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatBRL(it.SalePrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(formatBRL(it.TotalValue), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func totalsRow(o entities.ServiceOrder) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	labels := []core.Component{label("Total geral:", 1)}
	values := []core.Component{value(formatBRL(o.TotalValueGeneral), 1)}
	if o.TotalValueWithDiscount != nil {
		labels = append(labels, label("Desconto:", 7), label("Total com desconto:", 13))
		values = append(values, value(formatBRL(o.Discount), 7), value(formatBRL(*o.TotalValueWithDiscount), 13))
	}

	return row.New(20).Add(col.New(6), col.New(3).Add(labels...), col.New(3).Add(values...))
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

func formatBRL(d decimal.Decimal) string {
	return "R$ " + strings.Replace(d.StringFixed(2), ".", ",", 1)
}
