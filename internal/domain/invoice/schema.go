// Package invoice define el esquema de entrada de una factura: la forma del
// formulario y las reglas de aceptación, compartidas por creación y edición.
package invoice

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Nombres de los campos del formulario.
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// Mensajes que ve el usuario junto a cada campo.
const (
	MsgCustomerRequired = "Please select a customer."
	MsgAmountInvalid    = "Please enter an amount greater than $0."
	MsgStatusInvalid    = "Please select an invoice status."
)

var fieldMessages = map[string]string{
	FieldCustomerID: MsgCustomerRequired,
	FieldAmount:     MsgAmountInvalid,
	FieldStatus:     MsgStatusInvalid,
}

var hundred = decimal.NewFromInt(100)

// Fields registro crudo recibido del formulario (strings) o de un body JSON (string o número).
type Fields map[string]any

// FieldErrors errores por campo; cada campo conserva el orden de sus mensajes.
type FieldErrors map[string][]string

// Input factura ya coercionada y validada.
type Input struct {
	CustomerID string          `json:"customerId" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"gt=0"`
	Status     string          `json:"status" validate:"required,oneof=pending paid"`
}

// AmountCents convierte el monto en dólares a centavos: round(amount × 100) en aritmética decimal,
// de modo que 100 -> 10000 y 99.99 -> 9999 sin error de punto flotante.
func (in Input) AmountCents() int64 {
	return in.Amount.Mul(hundred).Round(0).IntPart()
}

// DollarsFromCents operación inversa, para precargar el formulario de edición.
func DollarsFromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los errores se reportan con el nombre del campo del formulario.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(decimalToFloat, decimal.Decimal{})
	return v
}

func decimalToFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// Validate coerciona y valida los campos crudos. Nunca entra en pánico por entrada mal formada:
// devuelve todos los errores de campo encontrados (no solo el primero). FieldErrors vacío = éxito.
func Validate(fields Fields) (Input, FieldErrors) {
	in := Input{
		CustomerID: asString(fields[FieldCustomerID]),
		Amount:     coerceAmount(fields[FieldAmount]),
		Status:     asString(fields[FieldStatus]),
	}

	err := validate.Struct(in)
	if err == nil {
		return in, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Solo ocurre si el validador se usa mal; se reporta como error de todos los campos.
		return in, FieldErrors{
			FieldCustomerID: {MsgCustomerRequired},
			FieldAmount:     {MsgAmountInvalid},
			FieldStatus:     {MsgStatusInvalid},
		}
	}

	errs := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		msg, ok := fieldMessages[field]
		if !ok {
			msg = fe.Error()
		}
		if !contains(errs[field], msg) {
			errs[field] = append(errs[field], msg)
		}
	}
	return in, errs
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// coerceAmount convierte string o número a decimal. Cualquier valor no convertible
// se reduce a cero, que luego falla la regla gt=0 con el mensaje del campo.
func coerceAmount(v any) decimal.Decimal {
	switch a := v.(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(a))
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(a)
	case float32:
		return coerceAmount(float64(a))
	case int:
		return decimal.NewFromInt(int64(a))
	case int64:
		return decimal.NewFromInt(a)
	case json.Number:
		return coerceAmount(a.String())
	case decimal.Decimal:
		return a
	default:
		return decimal.Zero
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
