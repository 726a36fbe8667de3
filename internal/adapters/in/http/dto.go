package http

// NewOrderRequest is the body of POST /pedido.
type NewOrderRequest struct {
	Pieza         string `json:"pieza"`
	Guarda        string `json:"guarda"`
	PosteRestante bool   `json:"poste_restante"`
}

// ChangeStatusRequest is the body of PUT /pedido/:pieza.
type ChangeStatusRequest struct {
	Estado string `json:"estado"`
}

// StatusOKResponse acknowledges a successful creation.
type StatusOKResponse struct {
	Status string `json:"status"`
}

// ChangeStatusResponse acknowledges a successful status change, echoing
// the tracking code and the status it now holds.
type ChangeStatusResponse struct {
	Status      string `json:"status"`
	Pieza       string `json:"pieza"`
	NuevoEstado string `json:"nuevo_estado"`
}

// OrderResponse is one order row in a GET /pedidos result.
type OrderResponse struct {
	Pieza         string `json:"pieza"`
	Guarda        string `json:"guarda"`
	Estado        string `json:"estado"`
	PosteRestante bool   `json:"poste_restante"`
}

// ErrorResponse carries an HTTP error code and a human-readable message.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
