package response

import "mecanica_os/internal/domain/entities"

type ScheduleResponse struct {
	Hour   int  `json:"hour"`
	Minute int  `json:"minute"`
	Active bool `json:"active"`
}

func FromSchedule(s entities.ScheduleConfig) ScheduleResponse {
	return ScheduleResponse{Hour: s.Hour, Minute: s.Minute, Active: s.Active}
}

type MonthlyBillingResponse struct {
	Month         string  `json:"month"`
	OrderCount    int     `json:"order_count"`
	TotalGeneral  float64 `json:"total_general"`
	TotalProducts float64 `json:"total_products"`
	TotalCost     float64 `json:"total_cost"`
	TotalPaid     float64 `json:"total_paid"`
	TotalOpen     float64 `json:"total_open"`
}

func FromMonthlyBilling(m entities.MonthlyBilling) MonthlyBillingResponse {
	return MonthlyBillingResponse{
		Month:         m.Month,
		OrderCount:    m.OrderCount,
		TotalGeneral:  m.TotalGeneral.InexactFloat64(),
		TotalProducts: m.TotalProducts.InexactFloat64(),
		TotalCost:     m.TotalCost.InexactFloat64(),
		TotalPaid:     m.TotalPaid.InexactFloat64(),
		TotalOpen:     m.TotalOpen.InexactFloat64(),
	}
}
