package response

import (
	"errors"

	"bonojuntos/internal/domain/claim"
	"bonojuntos/internal/domain/redemption"
	"bonojuntos/internal/usecase/commands"
)

type ConfirmationRecordResponse struct {
	AttemptID      string `json:"attempt_id"`
	PromotionID    int64  `json:"promotion_id"`
	UserID         string `json:"user_id"`
	UserName       string `json:"user_name"`
	PromotionTitle string `json:"promotion_title"`
	BusinessName   string `json:"business_name"`
}

type ScannerStateResponse struct {
	Phase        string                      `json:"phase"`
	Record       *ConfirmationRecordResponse `json:"record,omitempty"`
	RedemptionID string                      `json:"redemption_id,omitempty"`
	Message      string                      `json:"message,omitempty"`
}

func FromSnapshot(snap redemption.Snapshot) ScannerStateResponse {
	resp := ScannerStateResponse{Phase: string(snap.Phase)}

	if snap.Record != nil {
		resp.Record = &ConfirmationRecordResponse{
			AttemptID:      snap.Record.AttemptID.String(),
			PromotionID:    snap.Record.PromotionID,
			UserID:         snap.Record.UserID,
			UserName:       snap.Record.UserName,
			PromotionTitle: snap.Record.PromotionTitle,
			BusinessName:   snap.Record.BusinessName,
		}
	}
	if snap.Result != nil {
		resp.RedemptionID = snap.Result.RedemptionID.String()
	}
	if snap.Err != nil {
		resp.Message = OperatorMessage(snap.Err)
	}
	return resp
}

// OperatorMessage maps core errors to the operator-facing display strings.
// This is the only place display text is attached; every rejection keeps a
// distinct message because each implies a different operator action.
func OperatorMessage(err error) string {
	switch {
	case errors.Is(err, commands.ErrInvalidToken):
		return "Código inválido"
	case errors.Is(err, claim.ErrUnsupportedVersion):
		return "Versión de código no compatible, pida al cliente regenerarlo"
	case errors.Is(err, claim.ErrExpired):
		return "Cupón expirado, pida al cliente regenerar el código"
	case errors.Is(err, claim.ErrIssuedInFuture):
		return "Código con fecha futura, verifique el reloj del dispositivo"
	case errors.Is(err, claim.ErrMerchantMismatch):
		return "Este cupón pertenece a otro comercio"
	case errors.Is(err, commands.ErrRedemptionConflict):
		return "El cupón ya fue canjeado"
	case errors.Is(err, commands.ErrRedemptionFailed):
		return "No se pudo registrar el canje, verifique antes de reintentar"
	case errors.Is(err, redemption.ErrScanThrottled):
		return "Espere un momento antes de escanear de nuevo"
	case errors.Is(err, redemption.ErrScanInFlight):
		return "Hay un canje en curso, espere a que termine"
	default:
		return "Error inesperado"
	}
}

type IssueTokenResponse struct {
	Token string `json:"token"`
}
