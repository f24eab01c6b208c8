package dto

// Envelope resultado de una operación de la API, construido por el pipeline y consumido por la
// capa HTTP. Nunca se persiste.
type Envelope struct {
	Status    bool           // true si la operación terminó con éxito
	HTTPCode  int            // código HTTP de la respuesta
	Arguments map[string]any // argumentos de entrada ya resueltos (page, customer, user...)
	Data      any            // proyección serializable del resultado
	Info      string         // mensaje de confirmación de mutaciones
	Errors    []string       // mensajes de error en orden de detección
}

// NewEnvelope crea un envelope vacío con los argumentos de la petición.
func NewEnvelope(args map[string]any) *Envelope {
	if args == nil {
		args = map[string]any{}
	}
	return &Envelope{Arguments: args}
}

// Fail registra el fallo con su código HTTP. Un envelope fallido no vuelve a éxito.
func (e *Envelope) Fail(code int, messages ...string) *Envelope {
	e.Status = false
	e.HTTPCode = code
	e.Data = nil
	e.Errors = append(e.Errors, messages...)
	return e
}

// Succeed registra el resultado exitoso.
func (e *Envelope) Succeed(code int, data any) *Envelope {
	e.Status = true
	e.HTTPCode = code
	e.Data = data
	return e
}

// Failed indica si se registró algún error.
func (e *Envelope) Failed() bool {
	return len(e.Errors) > 0
}

// InfoResponse cuerpo de las confirmaciones de mutación.
type InfoResponse struct {
	Info string `json:"info"`
}

// ErrorList cuerpo de error HTTP: lista de mensajes legibles.
type ErrorList []string

// Link enlace hipermedia relativo.
type Link struct {
	Href string `json:"href"`
}

// Links relaciones hipermedia de una proyección; las ausentes se omiten.
type Links struct {
	Self   *Link `json:"self,omitempty"`
	Create *Link `json:"create,omitempty"`
	Update *Link `json:"update,omitempty"`
	Delete *Link `json:"delete,omitempty"`
}
