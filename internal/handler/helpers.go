package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"
	"github.com/ReponseBlaise/Preferred-System/internal/authz"
	"github.com/ReponseBlaise/Preferred-System/internal/middleware"
	"github.com/ReponseBlaise/Preferred-System/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	return validateStruct(c, req)
}

// bindQueryAndValidate does the same for query-string structs.
func bindQueryAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid query: "+err.Error()))
		return false
	}
	return validateStruct(c, req)
}

func validateStruct(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respond writes the uniform success envelope {"success":true,"data":…}.
func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// fail maps a service error onto its HTTP status and the error envelope.
// Unknown error types become an opaque 500.
func fail(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status(), apierror.New(apiErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
}

// parseIDParam parses a UUID path parameter, writing the 400 on failure.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

// actor returns the authenticated user's id and role from the JWT claims.
func actor(c *gin.Context) (uuid.UUID, authz.Role) {
	claims := middleware.GetClaims(c)
	id, _ := uuid.Parse(claims.UserID)
	return id, authz.Role(claims.Role)
}

// requireProjectAccess evaluates the access predicate and writes the 403 —
// with no resource fields in the body — when it denies.
func requireProjectAccess(c *gin.Context, access service.AccessService, projectID uuid.UUID) bool {
	userID, role := actor(c)
	if !access.HasProjectAccess(c.Request.Context(), userID, role, projectID) {
		c.JSON(http.StatusForbidden, apierror.New("access denied"))
		return false
	}
	return true
}
