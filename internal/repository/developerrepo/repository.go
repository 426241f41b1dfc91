package developerrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"godevs/internal/domain"
	apperror "godevs/internal/errors"
	"godevs/internal/pkg/logger"
)

const developerColumns = `id, full_name, cellphone, phone, specialties, cep, street, neighborhood, city, state`

// DeveloperRepository implementa o acesso à tabela developers.
// As operações são repasses diretos, sem regra de negócio.
type DeveloperRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewDeveloperRepository cria e retorna uma nova instância do Repositório de Desenvolvedores.
func NewDeveloperRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *DeveloperRepository {
	return &DeveloperRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// rowScanner é satisfeito por *sql.Row e *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeveloper(row rowScanner) (domain.Developer, error) {
	var dev domain.Developer
	var phone, street, neighborhood, city, uf sql.NullString
	err := row.Scan(
		&dev.ID, &dev.FullName, &dev.Cellphone, &phone, &dev.Specialties,
		&dev.Cep, &street, &neighborhood, &city, &uf,
	)
	if err != nil {
		return domain.Developer{}, err
	}
	if phone.Valid {
		p := phone.String
		dev.Phone = &p
	}
	dev.Street = street.String
	dev.Neighborhood = neighborhood.String
	dev.City = city.String
	dev.State = uf.String
	return dev, nil
}

// FindAll busca todos os desenvolvedores.
func (r *DeveloperRepository) FindAll(ctx context.Context) ([]domain.Developer, error) {
	r.logger.Debug("Iniciando FindAll no repositório.", nil)

	query := `SELECT ` + developerColumns + ` FROM developers ORDER BY id`
	return r.queryMany(ctx, query)
}

// FindByID busca um desenvolvedor pela chave primária.
func (r *DeveloperRepository) FindByID(ctx context.Context, id int64) (domain.Developer, error) {
	r.logger.Debug("Iniciando FindByID no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + developerColumns + ` FROM developers WHERE id = $1`
	dev, err := scanDeveloper(r.DB.QueryRowContext(ctxTimeout, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Desenvolvedor não encontrado.", map[string]interface{}{"id": id})
		return domain.Developer{}, apperror.NewNotFoundError(fmt.Sprintf("Desenvolvedor com ID %d não encontrado.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar desenvolvedor no DB.", err)
		return domain.Developer{}, translateError("Falha ao buscar desenvolvedor", err)
	}
	return dev, nil
}

// FindOneWhere busca o primeiro desenvolvedor com field = value.
func (r *DeveloperRepository) FindOneWhere(ctx context.Context, field domain.DeveloperField, value string) (domain.Developer, error) {
	r.logger.Debug("Iniciando FindOneWhere no repositório.", map[string]interface{}{"field": string(field), "value": value})

	if !field.Valid() {
		return domain.Developer{}, apperror.NewInternalError(fmt.Sprintf("Campo de busca inválido: %s", field), nil)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + developerColumns + ` FROM developers WHERE ` + string(field) + ` = $1 ORDER BY id LIMIT 1`
	dev, err := scanDeveloper(r.DB.QueryRowContext(ctxTimeout, query, value))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Nenhum desenvolvedor corresponde ao filtro.", map[string]interface{}{"field": string(field), "value": value})
		return domain.Developer{}, apperror.NewNotFoundError(fmt.Sprintf("Nenhum desenvolvedor com %s = %s.", field, value))
	}
	if err != nil {
		r.logger.Error("Falha ao executar FindOneWhere.", err)
		return domain.Developer{}, translateError("Falha ao buscar desenvolvedor", err)
	}
	return dev, nil
}

// FindAllWhere busca todos os desenvolvedores com field = value.
func (r *DeveloperRepository) FindAllWhere(ctx context.Context, field domain.DeveloperField, value string) ([]domain.Developer, error) {
	r.logger.Debug("Iniciando FindAllWhere no repositório.", map[string]interface{}{"field": string(field), "value": value})

	if !field.Valid() {
		return nil, apperror.NewInternalError(fmt.Sprintf("Campo de busca inválido: %s", field), nil)
	}

	query := `SELECT ` + developerColumns + ` FROM developers WHERE ` + string(field) + ` = $1 ORDER BY id`
	return r.queryMany(ctx, query, value)
}

// FindAllLike busca todos os desenvolvedores cujo field contém value (LIKE %value%).
// Os curingas de LIKE presentes em value são escapados.
func (r *DeveloperRepository) FindAllLike(ctx context.Context, field domain.DeveloperField, value string) ([]domain.Developer, error) {
	r.logger.Debug("Iniciando FindAllLike no repositório.", map[string]interface{}{"field": string(field), "value": value})

	if !field.Valid() {
		return nil, apperror.NewInternalError(fmt.Sprintf("Campo de busca inválido: %s", field), nil)
	}

	query := `SELECT ` + developerColumns + ` FROM developers WHERE ` + string(field) + ` LIKE $1 ORDER BY id`
	return r.queryMany(ctx, query, "%"+escapeLike(value)+"%")
}

// Create insere um novo desenvolvedor e devolve o registro com o ID gerado.
func (r *DeveloperRepository) Create(ctx context.Context, dev domain.Developer) (domain.Developer, error) {
	r.logger.Debug("Iniciando Create no repositório.", map[string]interface{}{"fullName": dev.FullName})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        INSERT INTO developers (full_name, cellphone, phone, specialties, cep, street, neighborhood, city, state)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + developerColumns

	created, err := scanDeveloper(r.DB.QueryRowContext(ctxTimeout, query,
		dev.FullName, dev.Cellphone, nullableString(dev.Phone), dev.Specialties,
		dev.Cep, dev.Street, dev.Neighborhood, dev.City, dev.State,
	))
	if err != nil {
		r.logger.Error("Falha ao inserir desenvolvedor no DB.", err)
		return domain.Developer{}, translateError("Falha ao criar desenvolvedor", err)
	}

	r.logger.Info("Desenvolvedor criado com sucesso.", map[string]interface{}{"id": created.ID})
	return created, nil
}

// Update aplica o patch sobre o registro existente. O ID do existente é mantido.
func (r *DeveloperRepository) Update(ctx context.Context, existing domain.Developer, patch domain.Developer) (domain.Developer, error) {
	r.logger.Debug("Iniciando Update no repositório.", map[string]interface{}{"id": existing.ID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE developers
        SET full_name = $1, cellphone = $2, phone = $3, specialties = $4, cep = $5,
            street = $6, neighborhood = $7, city = $8, state = $9
        WHERE id = $10
        RETURNING ` + developerColumns

	updated, err := scanDeveloper(r.DB.QueryRowContext(ctxTimeout, query,
		patch.FullName, patch.Cellphone, nullableString(patch.Phone), patch.Specialties,
		patch.Cep, patch.Street, patch.Neighborhood, patch.City, patch.State,
		existing.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Desenvolvedor não encontrado para atualização.", map[string]interface{}{"id": existing.ID})
		return domain.Developer{}, apperror.NewNotFoundError(fmt.Sprintf("Desenvolvedor com ID %d não encontrado para atualização.", existing.ID))
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar desenvolvedor no DB.", err)
		return domain.Developer{}, translateError("Falha ao atualizar desenvolvedor", err)
	}

	r.logger.Info("Desenvolvedor atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

// Delete remove o registro existente.
func (r *DeveloperRepository) Delete(ctx context.Context, existing domain.Developer) error {
	r.logger.Debug("Iniciando Delete no repositório.", map[string]interface{}{"id": existing.ID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM developers WHERE id = $1`, existing.ID)
	if err != nil {
		r.logger.Error("Falha ao deletar desenvolvedor do DB.", err)
		return translateError("Falha ao deletar desenvolvedor", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após Delete.", err)
		return apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		r.logger.Info("Desenvolvedor não encontrado para exclusão.", map[string]interface{}{"id": existing.ID})
		return apperror.NewNotFoundError(fmt.Sprintf("Desenvolvedor com ID %d não encontrado para exclusão.", existing.ID))
	}

	r.logger.Info("Desenvolvedor deletado com sucesso.", map[string]interface{}{"id": existing.ID})
	return nil
}

func (r *DeveloperRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Developer, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao executar consulta de desenvolvedores.", err)
		return nil, translateError("Falha ao buscar desenvolvedores", err)
	}
	defer rows.Close()

	developers := []domain.Developer{}
	for rows.Next() {
		dev, err := scanDeveloper(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear desenvolvedor na iteração.", err)
			return nil, apperror.NewDBError("Falha ao mapear desenvolvedores do DB", err)
		}
		developers = append(developers, dev)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de desenvolvedores.", err)
		return nil, apperror.NewDBError("Erro após iteração de desenvolvedores", err)
	}

	r.logger.Debug("Consulta de desenvolvedores concluída.", map[string]interface{}{"total": len(developers)})
	return developers, nil
}

// translateError converte erros do driver pq nos erros da aplicação.
func translateError(msg string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		// Nenhuma constraint UNIQUE existe hoje; o caso cobre constraints futuras.
		case "unique_violation":
			return apperror.NewConflictError(fmt.Sprintf("%s: registro duplicado (%s).", msg, pqErr.Constraint))
		case "string_data_right_truncation", "not_null_violation", "check_violation":
			return apperror.NewValidationError(fmt.Sprintf("%s: %s.", msg, pqErr.Message))
		}
	}
	return apperror.NewDBError(msg, err)
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
