package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"godevs/internal/domain"
	apperror "godevs/internal/errors"
	"godevs/internal/pkg/logger"
)

// DefaultBaseURL é o endereço público do ViaCEP.
const DefaultBaseURL = "https://viacep.com.br"

// addressResponse é o corpo JSON devolvido pelo ViaCEP.
// Para CEPs inexistentes o serviço responde 200 com {"erro": true}.
type addressResponse struct {
	Cep        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       any    `json:"erro"`
}

// Client consulta o endereço de um CEP no serviço externo.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient cria o cliente com o timeout informado aplicado a cada consulta.
func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// Lookup faz uma única requisição ao serviço e devolve o endereço do CEP.
// Qualquer falha (rede, status, JSON, CEP inexistente) vira um InternalError.
func (c *Client) Lookup(ctx context.Context, cep string) (domain.Address, error) {
	endpoint := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, url.PathEscape(cep))
	c.logger.Debug("Consultando CEP no serviço de endereços.", map[string]interface{}{"cep": cep, "url": endpoint})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Address{}, apperror.NewInternalError("Falha ao montar a consulta de CEP.", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Falha na comunicação com o serviço de CEP.", err)
		return domain.Address{}, apperror.NewInternalError("Falha ao consultar o serviço de CEP.", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("status inesperado %d", resp.StatusCode)
		c.logger.Error("Serviço de CEP respondeu com erro.", err)
		return domain.Address{}, apperror.NewInternalError("Falha ao consultar o serviço de CEP.", err)
	}

	var body addressResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Error("Resposta do serviço de CEP não é um JSON válido.", err)
		return domain.Address{}, apperror.NewInternalError("Resposta inválida do serviço de CEP.", err)
	}

	if isErrorFlag(body.Erro) {
		c.logger.Warn("CEP não encontrado no serviço de endereços.", map[string]interface{}{"cep": cep})
		return domain.Address{}, apperror.NewInternalError(fmt.Sprintf("CEP %s não encontrado no serviço de endereços.", cep), nil)
	}

	return domain.Address{
		Street:       body.Logradouro,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
	}, nil
}

// isErrorFlag trata as duas formas conhecidas do campo: true e "true".
func isErrorFlag(v any) bool {
	switch flag := v.(type) {
	case bool:
		return flag
	case string:
		return strings.EqualFold(flag, "true")
	}
	return false
}
