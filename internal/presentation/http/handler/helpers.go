package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/booth-pos/internal/presentation/http/dto/response"
	"github.com/sangkips/booth-pos/pkg/apperror"
)

// bindJSON binds the request body and writes the error response on failure
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fieldErrors := make([]apperror.FieldError, 0, len(verrs))
			for _, fe := range verrs {
				fieldErrors = append(fieldErrors, apperror.FieldError{
					Field:   strings.ToLower(fe.Field()),
					Message: "failed on the '" + fe.Tag() + "' rule",
				})
			}
			response.ValidationError(c, fieldErrors)
			return false
		}
		response.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}

func toLineItems(items []request.LineItemRequest) []entity.LineItem {
	out := make([]entity.LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, entity.LineItem{
			Name:  item.Name,
			Price: item.Price,
			Qty:   item.Qty,
			Image: item.Image,
		})
	}
	return out
}

func toBill(req request.BillRequest) *entity.Bill {
	return &entity.Bill{
		BillID:   req.BillID,
		DateTime: req.DateTime,
		Products: toLineItems(req.Products),
	}
}

// toSelection drops non-positive quantities so the selection invariant holds
func toSelection(raw map[string]int) entity.Selection {
	sel := make(entity.Selection, len(raw))
	for name, qty := range raw {
		if qty > 0 {
			sel[name] = qty
		}
	}
	return sel
}
