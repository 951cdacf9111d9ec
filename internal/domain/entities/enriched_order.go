package entities

import (
	"time"

	"mecanica_os/internal/domain/status"

	"github.com/shopspring/decimal"
)

// EnrichedOrder is a ServiceOrder resolved for display: client and vehicle
// references replaced by names (or placeholders), status by its label.
type EnrichedOrder struct {
	ID                 string          `json:"id"`
	Code               string          `json:"code"`
	OSNumber           string          `json:"os_numero"`
	ClientName         string          `json:"cliente_nome"`
	VehicleDescription string          `json:"veiculo_descricao"`
	VehiclePlate       string          `json:"placa"`
	Status             status.Code     `json:"status"`
	StatusLabel        string          `json:"status_label"`
	EntryDate          time.Time       `json:"data_entrada"`
	Deadline           *time.Time      `json:"data_finalizacao,omitempty"`
	Value              decimal.Decimal `json:"valor"`
	Paid               bool            `json:"pago"`
}
