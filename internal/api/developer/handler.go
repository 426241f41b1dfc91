package developer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"godevs/internal/domain"
	apperror "godevs/internal/errors"
	"godevs/internal/pkg/logger"
)

// DeveloperService define o contrato que o Handler espera da camada de Serviço.
type DeveloperService interface {
	ListDevelopers(ctx context.Context) ([]domain.Developer, error)
	GetDeveloperByID(ctx context.Context, id int64) (domain.Developer, error)
	CreateDeveloper(ctx context.Context, in domain.DeveloperInput) (domain.Developer, error)
	UpdateDeveloper(ctx context.Context, id int64, in domain.DeveloperInput) (domain.Developer, error)
	DeleteDeveloper(ctx context.Context, id int64) (domain.DeletionResult, error)
	GetDeveloperByFullName(ctx context.Context, fullName string) (domain.Developer, error)
	GetDeveloperByCellphone(ctx context.Context, cellphone string) (domain.Developer, error)
	GetDevelopersByCep(ctx context.Context, cep string) ([]domain.Developer, error)
	GetDevelopersBySpeciality(ctx context.Context, speciality string) ([]domain.Developer, error)
}

// Options ajusta a classificação dos erros detectados no próprio Handler.
type Options struct {
	// ValidationAsBadRequest responde 400 para payload inválido; desligado, 500.
	ValidationAsBadRequest bool
}

// Handler agrupa todos os métodos de Handler de desenvolvedores.
type Handler struct {
	Service DeveloperService
	Logger  logger.Logger
	opts    Options
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc DeveloperService, log logger.Logger, opts Options) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
		opts:    opts,
	}
}

// handleServiceResponse envia o payload em caso de sucesso ou o corpo de erro padronizado.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
			}
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	errorResponse := domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	}
	var validationErr *apperror.ValidationError
	if errors.As(err, &validationErr) && status == http.StatusBadRequest {
		errorResponse.Fields = validationErr.Fields
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse)
}

// pathID lê a variável {id} da rota. O router já restringe o formato a dígitos.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, apperror.NewNotFoundError(fmt.Sprintf("Desenvolvedor com ID %s não encontrado.", mux.Vars(r)["id"]))
	}
	return id, nil
}

// decodeInput lê o corpo JSON. JSON malformado ou com tipos errados é uma falha
// de validação e segue a mesma classificação aplicada pelo Service.
func (h *Handler) decodeInput(r *http.Request) (domain.DeveloperInput, error) {
	var in domain.DeveloperInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Logger.Debug("Payload de desenvolvedor não decodificado.", map[string]interface{}{"error": err.Error()})
		invalid := apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
		return domain.DeveloperInput{}, apperror.ClassifyValidation(invalid, h.opts.ValidationAsBadRequest)
	}
	return in, nil
}

// ListDevelopersHandler lida com a requisição GET /developer.
// @Summary Lista todos os desenvolvedores
// @Tags developers
// @Produce json
// @Success 200 {array} domain.Developer "Lista de desenvolvedores"
// @Failure 404 {object} domain.ErrorResponse "Nenhum desenvolvedor cadastrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /developer [get]
func (h *Handler) ListDevelopersHandler(w http.ResponseWriter, r *http.Request) {
	developers, err := h.Service.ListDevelopers(r.Context())
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	h.handleServiceResponse(w, r, developers, nil, http.StatusOK)
}

// CreateDeveloperHandler lida com a requisição POST /developer.
// @Summary Cria um novo desenvolvedor
// @Description O endereço é preenchido a partir do CEP informado.
// @Tags developers
// @Accept json
// @Produce json
// @Param developer body domain.DeveloperInput true "Dados do desenvolvedor"
// @Success 201 {object} domain.Developer "Desenvolvedor criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido (com VALIDATION_AS_BAD_REQUEST)"
// @Failure 500 {object} domain.ErrorResponse "Falha de validação, de consulta de CEP ou de persistência"
// @Router /developer [post]
func (h *Handler) CreateDeveloperHandler(w http.ResponseWriter, r *http.Request) {
	in, err := h.decodeInput(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	created, err := h.Service.CreateDeveloper(r.Context(), in)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	h.handleServiceResponse(w, r, created, nil, http.StatusCreated)
}

// GetDeveloperByIDHandler lida com a requisição GET /developer/{id}.
// @Summary Obtém um desenvolvedor por ID
// @Tags developers
// @Produce json
// @Param id path int true "ID do desenvolvedor"
// @Success 200 {object} domain.Developer
// @Failure 404 {object} domain.ErrorResponse "Desenvolvedor não encontrado"
// @Router /developer/{id} [get]
func (h *Handler) GetDeveloperByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	dev, err := h.Service.GetDeveloperByID(r.Context(), id)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	h.handleServiceResponse(w, r, dev, nil, http.StatusOK)
}

// UpdateDeveloperHandler lida com a requisição PUT /developer/{id}.
// @Summary Atualiza um desenvolvedor
// @Tags developers
// @Accept json
// @Produce json
// @Param id path int true "ID do desenvolvedor"
// @Param developer body domain.DeveloperInput true "Dados do desenvolvedor"
// @Success 200 {object} domain.Developer
// @Failure 404 {object} domain.ErrorResponse "Desenvolvedor não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /developer/{id} [put]
func (h *Handler) UpdateDeveloperHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	in, err := h.decodeInput(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	updated, err := h.Service.UpdateDeveloper(r.Context(), id, in)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	h.handleServiceResponse(w, r, updated, nil, http.StatusOK)
}

// DeleteDeveloperHandler lida com a requisição DELETE /developer/{id}.
// @Summary Remove um desenvolvedor
// @Tags developers
// @Produce json
// @Param id path int true "ID do desenvolvedor"
// @Success 200 {object} domain.DeletionResult
// @Failure 404 {object} domain.ErrorResponse "Desenvolvedor não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /developer/{id} [delete]
func (h *Handler) DeleteDeveloperHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	result, err := h.Service.DeleteDeveloper(r.Context(), id)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	h.handleServiceResponse(w, r, result, nil, http.StatusOK)
}

// GetDeveloperByFullNameHandler lida com a requisição GET /developer/fullname/{fullname}.
// @Summary Busca um desenvolvedor pelo nome completo
// @Tags developers
// @Produce json
// @Param fullname path string true "Nome completo exato"
// @Success 200 {object} domain.Developer
// @Failure 404 {object} domain.ErrorResponse "Nenhum desenvolvedor com esse nome"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /developer/fullname/{fullname} [get]
func (h *Handler) GetDeveloperByFullNameHandler(w http.ResponseWriter, r *http.Request) {
	dev, err := h.Service.GetDeveloperByFullName(r.Context(), mux.Vars(r)["fullname"])
	h.handleServiceResponse(w, r, nilOnError(dev, err), err, http.StatusOK)
}

// GetDeveloperByCellphoneHandler lida com a requisição GET /developer/cellphone/{cellphone}.
// @Summary Busca um desenvolvedor pelo celular
// @Tags developers
// @Produce json
// @Param cellphone path string true "Celular exato"
// @Success 200 {object} domain.Developer
// @Failure 404 {object} domain.ErrorResponse "Nenhum desenvolvedor com esse celular"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /developer/cellphone/{cellphone} [get]
func (h *Handler) GetDeveloperByCellphoneHandler(w http.ResponseWriter, r *http.Request) {
	dev, err := h.Service.GetDeveloperByCellphone(r.Context(), mux.Vars(r)["cellphone"])
	h.handleServiceResponse(w, r, nilOnError(dev, err), err, http.StatusOK)
}

// GetDevelopersByCepHandler lida com a requisição GET /developer/cep/{cep}.
// @Summary Lista os desenvolvedores de um CEP
// @Tags developers
// @Produce json
// @Param cep path string true "CEP exato"
// @Success 200 {array} domain.Developer
// @Failure 404 {object} domain.ErrorResponse "Nenhum desenvolvedor nesse CEP"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /developer/cep/{cep} [get]
func (h *Handler) GetDevelopersByCepHandler(w http.ResponseWriter, r *http.Request) {
	developers, err := h.Service.GetDevelopersByCep(r.Context(), mux.Vars(r)["cep"])
	h.handleServiceResponse(w, r, nilOnError(developers, err), err, http.StatusOK)
}

// GetDevelopersBySpecialityHandler lida com a requisição GET /developer/speciality/{speciality}.
// @Summary Busca desenvolvedores por especialidade
// @Description Busca por trecho: "Java" também encontra "JavaScript". Sem resultados devolve lista vazia.
// @Tags developers
// @Produce json
// @Param speciality path string true "Trecho da especialidade"
// @Success 200 {array} domain.Developer
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /developer/speciality/{speciality} [get]
func (h *Handler) GetDevelopersBySpecialityHandler(w http.ResponseWriter, r *http.Request) {
	developers, err := h.Service.GetDevelopersBySpeciality(r.Context(), mux.Vars(r)["speciality"])
	h.handleServiceResponse(w, r, nilOnError(developers, err), err, http.StatusOK)
}

func nilOnError(data interface{}, err error) interface{} {
	if err != nil {
		return nil
	}
	return data
}
