package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cms_back_end/internal/apperror"
)

// ErrorHandler est le funnel d'erreurs unique du process :
// les handlers poussent leurs erreurs via c.Error(), on répond ici
// avec l'enveloppe {success:false, error:...} et le bon statut.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		status := http.StatusInternalServerError
		message := "Internal server error"

		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			status = appErr.Status
			message = appErr.Message
			if appErr.Err != nil {
				log.Printf("⚠️ Erreur amont (%d): %v", status, appErr.Err)
			}
		} else {
			log.Printf("❌ Erreur non typée: %v", err)
		}

		c.JSON(status, gin.H{
			"success": false,
			"error":   message,
		})
	}
}

// NotFound répond aux routes inconnues avec la même enveloppe
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Not found",
		})
	}
}
