package service

const (
	MonthsPerYear = 12
	DaysPerYear   = 365.25 // incluye años bisiestos

	DefaultCurrencySymbol = "$"
)

// Mensajes de validación mostrados junto a cada campo.
const (
	MsgCapitalOrContribution = "Debes ingresar un capital inicial o hacer aportes periódicos."
	MsgNonNegative           = "Debe ser un número positivo o cero."
	MsgCapitalNonNegative    = "El capital inicial debe ser un número positivo o cero."
	MsgContributionNegative  = "El aporte debe ser un número positivo o cero."
	MsgDurationPositive      = "La duración debe ser mayor a 0."
	MsgRatePositive          = "La tasa de interés debe ser mayor a 0%."
	MsgInvalidOption         = "Opción no válida."
	MsgResultOutOfRange      = "El resultado es demasiado grande para calcularse; reduce la duración, la tasa o los montos."

	// MsgCheckFields is the general message shown when a calculation is refused.
	MsgCheckFields = "Por favor, revisa los campos marcados antes de calcular."
)
