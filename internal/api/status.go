package api

// ===============================
// Appointment Status
// ===============================

const (
	StatusScheduled  = "scheduled"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no_show"
)

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentPartial  = "partial"
	PaymentRefunded = "refunded"
)

// ===============================
// Action gating
// ===============================
//
// As transições em si são decididas pelo backend; aqui só escolhemos
// quais ações oferecer na tela.

// IsFinal diz se um agendamento já saiu do fluxo ativo.
func IsFinal(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// OfferConfirm define se a tela oferece "Confirmar"
func OfferConfirm(status string) bool {
	return status == StatusScheduled
}

// OfferComplete define se a tela oferece "Marcar como Concluído":
// qualquer status fora de concluído/cancelado.
func OfferComplete(status string) bool {
	return !IsFinal(status)
}

// OfferCancel define se a tela oferece "Cancelar"
func OfferCancel(status string) bool {
	return status == StatusScheduled || status == StatusConfirmed
}
