package dto

import (
	"encoding/json"
	"time"
)

// Order элемент пакетного импорта. Вес приходит числом с двумя
// десятичными знаками, парсится без плавающей точки.
type Order struct {
	OrderID       int64       `json:"order_id"`
	Weight        json.Number `json:"weight"`
	Region        int64       `json:"region"`
	DeliveryHours []string    `json:"delivery_hours"`
}

type OrdersCreateRequest struct {
	Data []Order `json:"data"`
}

type OrdersCreateResponse struct {
	Orders []ID `json:"orders"`
}

type OrdersAssignRequest struct {
	CourierID int64 `json:"courier_id"`
}

// OrdersAssignResponse assign_time отсутствует, когда подходящих
// заказов не нашлось и развоз не создан.
type OrdersAssignResponse struct {
	Orders     []ID       `json:"orders"`
	AssignTime *time.Time `json:"assign_time,omitempty"`
}

type OrderCompleteRequest struct {
	CourierID    int64     `json:"courier_id"`
	OrderID      int64     `json:"order_id"`
	CompleteTime time.Time `json:"complete_time"`
}

type OrderCompleteResponse struct {
	OrderID int64 `json:"order_id"`
}
