package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"horas-api/internal/models"
	"horas-api/internal/repository"
	"horas-api/internal/service"
	"horas-api/internal/testutil"
)

func newFuncionarioRouter(svc service.FuncionarioService, responder Responder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewFuncionarioHandler(svc, responder, zap.NewNop())
	router := gin.New()
	router.POST("/funcionarios", h.Create)
	router.GET("/funcionarios", h.List)
	router.GET("/funcionarios/:id", h.GetByID)
	router.PUT("/funcionarios/:id", h.Update)
	router.DELETE("/funcionarios/:id", h.Delete)
	return router
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestFuncionarioHandler_Create(t *testing.T) {
	t.Run("Should return 201 with the created employee", func(t *testing.T) {
		svc := new(mockFuncionarioService)
		svc.On("Create", mock.Anything, "Ana", int64(2)).
			Return(&models.Funcionario{ID: 7, Nome: "Ana", CargoID: testutil.Int64(2)}, nil)

		w := perform(newFuncionarioRouter(svc, Responder{}), http.MethodPost, "/funcionarios", `{"nome":"Ana","cargo_id":2}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":7,"nome":"Ana","cargo_id":2}`, w.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("Should return 400 when a field is missing", func(t *testing.T) {
		svc := new(mockFuncionarioService)

		w := perform(newFuncionarioRouter(svc, Responder{}), http.MethodPost, "/funcionarios", `{"nome":"Ana"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Nome e cargo são obrigatórios."}`, w.Body.String())
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should return 400 when the service rejects the input", func(t *testing.T) {
		svc := new(mockFuncionarioService)
		svc.On("Create", mock.Anything, " ", int64(1)).Return(nil, service.ErrValidation)

		w := perform(newFuncionarioRouter(svc, Responder{}), http.MethodPost, "/funcionarios", `{"nome":" ","cargo_id":1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should return 500 with details on a store error", func(t *testing.T) {
		svc := new(mockFuncionarioService)
		svc.On("Create", mock.Anything, "Ana", int64(99)).Return(nil, errors.New("foreign key constraint fails"))

		w := perform(newFuncionarioRouter(svc, Responder{ExposeDetails: true}), http.MethodPost, "/funcionarios", `{"nome":"Ana","cargo_id":99}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Erro ao criar funcionário.","details":"foreign key constraint fails"}`, w.Body.String())
	})

	t.Run("Should hide details when not exposed", func(t *testing.T) {
		svc := new(mockFuncionarioService)
		svc.On("Create", mock.Anything, "Ana", int64(99)).Return(nil, errors.New("foreign key constraint fails"))

		w := perform(newFuncionarioRouter(svc, Responder{}), http.MethodPost, "/funcionarios", `{"nome":"Ana","cargo_id":99}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Erro ao criar funcionário."}`, w.Body.String())
	})
}

func TestFuncionarioHandler_List(t *testing.T) {
	t.Run("Should return every employee with the role name", func(t *testing.T) {
		svc := new(mockFuncionarioService)
		cargo := "Analista"
		svc.On("List", mock.Anything).Return([]models.FuncionarioView{
			{ID: 1, Nome: "Ana", Cargo: &cargo},
			{ID: 2, Nome: "Bruno"},
		}, nil)

		w := perform(newFuncionarioRouter(svc, Responder{}), http.MethodGet, "/funcionarios", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"nome":"Ana","cargo":"Analista"},{"id":2,"nome":"Bruno","cargo":null}]`, w.Body.String())
	})

	t.Run("Should return an empty array when there are no employees", func(t *testing.T) {
		svc := new(mockFuncionarioService)
		svc.On("List", mock.Anything).Return([]models.FuncionarioView{}, nil)

		w := perform(newFuncionarioRouter(svc, Responder{}), http.MethodGet, "/funcionarios", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("Should return 503 when the store is unavailable", func(t *testing.T) {
		svc := new(mockFuncionarioService)
		svc.On("List", mock.Anything).Return(nil, fmt.Errorf("list: %w", repository.ErrStoreUnavailable))

		w := perform(newFuncionarioRouter(svc, Responder{ExposeDetails: true}), http.MethodGet, "/funcionarios", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "Erro ao buscar funcionários.")
	})
}

func TestFuncionarioHandler_GetByID(t *testing.T) {
	t.Run("Should return the employee", func(t *testing.T) {
		svc := new(mockFuncionarioService)
		cargo := "Gerente"
		svc.On("GetByID", mock.Anything, int64(3)).Return(&models.FuncionarioView{ID: 3, Nome: "Ana", Cargo: &cargo}, nil)

		w := perform(newFuncionarioRouter(svc, Responder{}), http.MethodGet, "/funcionarios/3", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":3,"nome":"Ana","cargo":"Gerente"}`, w.Body.String())
	})

	t.Run("Should return 404 when the employee does not exist", func(t *testing.T) {
		svc := new(mockFuncionarioService)
		svc.On("GetByID", mock.Anything, int64(42)).Return(nil, service.ErrNotFound)

		w := perform(newFuncionarioRouter(svc, Responder{}), http.MethodGet, "/funcionarios/42", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Funcionário não encontrado"}`, w.Body.String())
	})

	t.Run("Should return 400 for a non-numeric id", func(t *testing.T) {
		svc := new(mockFuncionarioService)

		w := perform(newFuncionarioRouter(svc, Responder{}), http.MethodGet, "/funcionarios/abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"ID inválido."}`, w.Body.String())
		svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestFuncionarioHandler_Update(t *testing.T) {
	t.Run("Should pass both fields to the service", func(t *testing.T) {
		svc := new(mockFuncionarioService)
		svc.On("Update", mock.Anything, int64(5),
			mock.MatchedBy(func(n *string) bool { return n != nil && *n == "Ana Maria" }),
			mock.MatchedBy(func(c *int64) bool { return c != nil && *c == 3 }),
		).Return(nil)

		w := perform(newFuncionarioRouter(svc, Responder{}), http.MethodPut, "/funcionarios/5", `{"nome":"Ana Maria","cargo_id":3}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Funcionário atualizado com sucesso."}`, w.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("Should pass nil for omitted fields", func(t *testing.T) {
		svc := new(mockFuncionarioService)
		svc.On("Update", mock.Anything, int64(5), (*string)(nil), (*int64)(nil)).Return(nil)

		w := perform(newFuncionarioRouter(svc, Responder{}), http.MethodPut, "/funcionarios/5", `{}`)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Should return 400 for malformed JSON", func(t *testing.T) {
		svc := new(mockFuncionarioService)

		w := perform(newFuncionarioRouter(svc, Responder{}), http.MethodPut, "/funcionarios/5", `{"nome":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should return 500 on a store error", func(t *testing.T) {
		svc := new(mockFuncionarioService)
		svc.On("Update", mock.Anything, int64(5), mock.Anything, mock.Anything).Return(errors.New("boom"))

		w := perform(newFuncionarioRouter(svc, Responder{}), http.MethodPut, "/funcionarios/5", `{"nome":"Ana"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Erro ao atualizar funcionário.")
	})
}

func TestFuncionarioHandler_Delete(t *testing.T) {
	t.Run("Should succeed even when nothing was deleted", func(t *testing.T) {
		svc := new(mockFuncionarioService)
		svc.On("Delete", mock.Anything, int64(999)).Return(nil)

		w := perform(newFuncionarioRouter(svc, Responder{}), http.MethodDelete, "/funcionarios/999", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Funcionário excluído com sucesso."}`, w.Body.String())
	})

	t.Run("Should return 500 when the employee is still referenced", func(t *testing.T) {
		svc := new(mockFuncionarioService)
		svc.On("Delete", mock.Anything, int64(1)).Return(errors.New("Cannot delete or update a parent row"))

		w := perform(newFuncionarioRouter(svc, Responder{ExposeDetails: true}), http.MethodDelete, "/funcionarios/1", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Erro ao excluir funcionário.","details":"Cannot delete or update a parent row"}`, w.Body.String())
	})
}
