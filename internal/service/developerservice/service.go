package developerservice

import (
	"context"
	"fmt"

	"godevs/internal/domain"
	apperror "godevs/internal/errors"
	"godevs/internal/pkg/logger"
)

// DeveloperRepository define o contrato que o Serviço espera da camada de Persistência.
type DeveloperRepository interface {
	FindAll(ctx context.Context) ([]domain.Developer, error)
	FindByID(ctx context.Context, id int64) (domain.Developer, error)
	FindOneWhere(ctx context.Context, field domain.DeveloperField, value string) (domain.Developer, error)
	FindAllWhere(ctx context.Context, field domain.DeveloperField, value string) ([]domain.Developer, error)
	FindAllLike(ctx context.Context, field domain.DeveloperField, value string) ([]domain.Developer, error)
	Create(ctx context.Context, dev domain.Developer) (domain.Developer, error)
	Update(ctx context.Context, existing domain.Developer, patch domain.Developer) (domain.Developer, error)
	Delete(ctx context.Context, existing domain.Developer) error
}

// AddressLookup resolve o endereço de um CEP (ViaCEP).
type AddressLookup interface {
	Lookup(ctx context.Context, cep string) (domain.Address, error)
}

// InputValidator valida o payload de criação e de atualização.
type InputValidator interface {
	ValidateCreate(in domain.DeveloperInput) error
	ValidateUpdate(in domain.DeveloperInput) error
}

// Options ajusta a classificação dos erros devolvidos pelo serviço.
type Options struct {
	// ValidationAsBadRequest mantém falhas de validação como ValidationError (400).
	// Desligado, elas são devolvidas como InternalError (500).
	ValidationAsBadRequest bool
}

// Service orquestra validação, consulta de endereço e persistência.
// Todo erro devolvido por ele é um apperror.AppError.
type Service struct {
	repo      DeveloperRepository
	addresses AddressLookup
	validator InputValidator
	opts      Options
	logger    logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Desenvolvedores.
func NewService(repo DeveloperRepository, addresses AddressLookup, validator InputValidator, opts Options, logger logger.Logger) *Service {
	return &Service{
		repo:      repo,
		addresses: addresses,
		validator: validator,
		opts:      opts,
		logger:    logger,
	}
}

// ListDevelopers busca todos os desenvolvedores.
// Uma tabela vazia é reportada como NotFoundError, e não como lista vazia.
func (s *Service) ListDevelopers(ctx context.Context) ([]domain.Developer, error) {
	s.logger.Debug("Iniciando listagem de desenvolvedores no serviço.", nil)

	developers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao listar desenvolvedores no repositório.", err)
		return nil, s.fail("Falha interna ao buscar desenvolvedores.", err)
	}
	if len(developers) == 0 {
		return nil, apperror.NewNotFoundError("Nenhum desenvolvedor encontrado.")
	}

	s.logger.Info("Desenvolvedores listados com sucesso.", map[string]interface{}{"count": len(developers)})
	return developers, nil
}

// GetDeveloperByID busca um desenvolvedor pela chave primária.
func (s *Service) GetDeveloperByID(ctx context.Context, id int64) (domain.Developer, error) {
	s.logger.Debug("Iniciando busca de desenvolvedor por ID no serviço.", map[string]interface{}{"id": id})

	dev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Developer{}, s.fail("Falha interna ao buscar desenvolvedor.", err)
	}
	return dev, nil
}

// CreateDeveloper valida o payload, resolve o endereço pelo CEP e persiste o registro.
// A persistência é o último passo: qualquer falha anterior não deixa efeito colateral.
func (s *Service) CreateDeveloper(ctx context.Context, in domain.DeveloperInput) (domain.Developer, error) {
	s.logger.Debug("Iniciando criação de desenvolvedor no serviço.", map[string]interface{}{"fullName": in.FullName, "cep": in.Cep})

	if err := s.validator.ValidateCreate(in); err != nil {
		s.logger.Warn("Falha na validação do desenvolvedor.", map[string]interface{}{"error": err.Error()})
		return domain.Developer{}, s.fail("Falha na validação do desenvolvedor.", err)
	}

	addr, err := s.addresses.Lookup(ctx, in.Cep)
	if err != nil {
		s.logger.Error("Falha ao consultar o endereço do CEP.", err)
		return domain.Developer{}, s.fail("Falha ao consultar o endereço do CEP.", err)
	}

	created, err := s.repo.Create(ctx, in.ToDeveloper(addr))
	if err != nil {
		s.logger.Error("Falha ao criar desenvolvedor no repositório.", err)
		return domain.Developer{}, s.fail("Falha interna ao criar desenvolvedor.", err)
	}

	s.logger.Info("Desenvolvedor criado com sucesso.", map[string]interface{}{"id": created.ID})
	return created, nil
}

// UpdateDeveloper revalida o payload, confirma que o registro existe, resolve o
// endereço novamente e sobrescreve todos os campos mutáveis.
// Para um ID inexistente a consulta de CEP não é feita.
func (s *Service) UpdateDeveloper(ctx context.Context, id int64, in domain.DeveloperInput) (domain.Developer, error) {
	s.logger.Debug("Iniciando atualização de desenvolvedor no serviço.", map[string]interface{}{"id": id, "cep": in.Cep})

	if err := s.validator.ValidateUpdate(in); err != nil {
		s.logger.Warn("Falha na validação do desenvolvedor para atualização.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Developer{}, s.fail("Falha na validação do desenvolvedor.", err)
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("Desenvolvedor não disponível para atualização.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Developer{}, s.fail("Falha interna ao buscar desenvolvedor.", err)
	}

	addr, err := s.addresses.Lookup(ctx, in.Cep)
	if err != nil {
		s.logger.Error("Falha ao consultar o endereço do CEP.", err)
		return domain.Developer{}, s.fail("Falha ao consultar o endereço do CEP.", err)
	}

	patch := in.ToDeveloper(addr)
	patch.ID = existing.ID

	updated, err := s.repo.Update(ctx, existing, patch)
	if err != nil {
		s.logger.Error("Falha ao atualizar desenvolvedor no repositório.", err)
		return domain.Developer{}, s.fail("Falha interna ao atualizar desenvolvedor.", err)
	}

	s.logger.Info("Desenvolvedor atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

// DeleteDeveloper remove o desenvolvedor e devolve seus últimos dados conhecidos.
func (s *Service) DeleteDeveloper(ctx context.Context, id int64) (domain.DeletionResult, error) {
	s.logger.Debug("Iniciando exclusão de desenvolvedor no serviço.", map[string]interface{}{"id": id})

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("Desenvolvedor não disponível para exclusão.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.DeletionResult{}, s.fail("Falha interna ao buscar desenvolvedor.", err)
	}

	if err := s.repo.Delete(ctx, existing); err != nil {
		s.logger.Error("Falha ao deletar desenvolvedor no repositório.", err)
		return domain.DeletionResult{}, s.fail("Falha interna ao deletar desenvolvedor.", err)
	}

	s.logger.Info("Desenvolvedor deletado com sucesso.", map[string]interface{}{"id": id})
	return domain.DeletionResult{
		Message:   fmt.Sprintf("Desenvolvedor %d removido com sucesso.", existing.ID),
		Developer: existing,
	}, nil
}

// GetDeveloperByFullName busca um desenvolvedor pelo nome completo exato.
func (s *Service) GetDeveloperByFullName(ctx context.Context, fullName string) (domain.Developer, error) {
	return s.findOne(ctx, domain.FieldFullName, fullName)
}

// GetDeveloperByCellphone busca um desenvolvedor pelo celular exato.
func (s *Service) GetDeveloperByCellphone(ctx context.Context, cellphone string) (domain.Developer, error) {
	return s.findOne(ctx, domain.FieldCellphone, cellphone)
}

// GetDevelopersByCep busca todos os desenvolvedores de um CEP.
// Nenhum resultado é NotFoundError.
func (s *Service) GetDevelopersByCep(ctx context.Context, cep string) ([]domain.Developer, error) {
	s.logger.Debug("Iniciando busca de desenvolvedores por CEP no serviço.", map[string]interface{}{"cep": cep})

	developers, err := s.repo.FindAllWhere(ctx, domain.FieldCep, cep)
	if err != nil {
		s.logger.Error("Falha ao buscar desenvolvedores por CEP no repositório.", err)
		return nil, s.fail("Falha interna ao buscar desenvolvedores.", err)
	}
	if len(developers) == 0 {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Nenhum desenvolvedor encontrado para o CEP %s.", cep))
	}
	return developers, nil
}

// GetDevelopersBySpeciality busca por substring na lista de especialidades.
// "Java" também encontra "JavaScript". Nenhum resultado devolve lista vazia.
func (s *Service) GetDevelopersBySpeciality(ctx context.Context, speciality string) ([]domain.Developer, error) {
	s.logger.Debug("Iniciando busca de desenvolvedores por especialidade no serviço.", map[string]interface{}{"speciality": speciality})

	developers, err := s.repo.FindAllLike(ctx, domain.FieldSpecialties, speciality)
	if err != nil {
		s.logger.Error("Falha ao buscar desenvolvedores por especialidade no repositório.", err)
		return nil, s.fail("Falha interna ao buscar desenvolvedores.", err)
	}
	if developers == nil {
		developers = []domain.Developer{}
	}
	return developers, nil
}

func (s *Service) findOne(ctx context.Context, field domain.DeveloperField, value string) (domain.Developer, error) {
	s.logger.Debug("Iniciando busca de desenvolvedor no serviço.", map[string]interface{}{"field": string(field), "value": value})

	dev, err := s.repo.FindOneWhere(ctx, field, value)
	if err != nil {
		return domain.Developer{}, s.fail("Falha interna ao buscar desenvolvedor.", err)
	}
	return dev, nil
}

// fail converte qualquer erro no envelope de erro do serviço.
// NotFound, Conflict e Internal passam adiante; erros de validação seguem Options;
// erros sem tipo viram InternalError com a mensagem informada.
func (s *Service) fail(msg string, err error) error {
	appErr, ok := apperror.AsAppError(err)
	if !ok {
		return apperror.NewInternalError(msg, err)
	}
	return apperror.ClassifyValidation(appErr, s.opts.ValidationAsBadRequest)
}
