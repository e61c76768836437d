package dto

// Courier элемент пакетного импорта и профиль в ответах.
// Интервалы времени передаются строками вида "HH:MM-HH:MM".
type Courier struct {
	CourierID    int64    `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []int64  `json:"regions"`
	WorkingHours []string `json:"working_hours"`
}

type CouriersCreateRequest struct {
	Data []Courier `json:"data"`
}

type CouriersCreateResponse struct {
	Couriers []ID `json:"couriers"`
}

// CourierUpdate частичное обновление профиля: незаполненные поля
// не меняются, заполненные заменяются целиком.
type CourierUpdate struct {
	CourierType  *string   `json:"courier_type,omitempty"`
	Regions      *[]int64  `json:"regions,omitempty"`
	WorkingHours *[]string `json:"working_hours,omitempty"`
}

// CourierInfo профиль с заработком и рейтингом. Рейтинг отсутствует,
// пока у курьера нет завершенных развозов.
type CourierInfo struct {
	CourierID    int64    `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []int64  `json:"regions"`
	WorkingHours []string `json:"working_hours"`
	Earnings     int64    `json:"earnings"`
	Rating       *float64 `json:"rating,omitempty"`
}
