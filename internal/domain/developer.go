package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SpecialtiesSeparator é o separador usado para persistir a lista de especialidades.
const SpecialtiesSeparator = ", "

// Developer representa o registro persistido de um desenvolvedor (a Entidade).
// Os campos de endereço são sempre derivados da consulta de CEP.
type Developer struct {
	ID           int64   `json:"id"`
	FullName     string  `json:"fullName"`
	Cellphone    string  `json:"cellphone"`
	Phone        *string `json:"phone"`
	Specialties  string  `json:"specialties"` // Lista unida por SpecialtiesSeparator
	Cep          string  `json:"cep"`
	Street       string  `json:"street"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	State        string  `json:"state"`
}

// ApplyAddress sobrescreve os campos de endereço com o resultado da consulta.
func (d *Developer) ApplyAddress(addr Address) {
	d.Street = addr.Street
	d.Neighborhood = addr.Neighborhood
	d.City = addr.City
	d.State = addr.State
}

// DeveloperInput é o payload (não confiável) de criação e atualização.
// Não há campos de endereço: eles nunca são aceitos do cliente.
type DeveloperInput struct {
	FullName    string        `json:"fullName" validate:"required,max=120"`
	Cellphone   NumericString `json:"cellphone" validate:"required,posint"`
	Phone       *string       `json:"phone" validate:"omitempty"`
	Specialties []string      `json:"specialties" validate:"required,min=1"`
	Cep         string        `json:"cep" validate:"required"`
}

// JoinedSpecialties devolve as especialidades no formato persistido.
func (in DeveloperInput) JoinedSpecialties() string {
	return strings.Join(in.Specialties, SpecialtiesSeparator)
}

// ToDeveloper monta o registro a partir do payload e do endereço resolvido.
func (in DeveloperInput) ToDeveloper(addr Address) Developer {
	dev := Developer{
		FullName:    in.FullName,
		Cellphone:   string(in.Cellphone),
		Phone:       in.Phone,
		Specialties: in.JoinedSpecialties(),
		Cep:         in.Cep,
	}
	dev.ApplyAddress(addr)
	return dev
}

// NumericString aceita tanto número quanto string no JSON e guarda o texto decimal.
// O celular chega como 55532541 ou "55532541" dependendo do cliente.
type NumericString string

// UnmarshalJSON implementa json.Unmarshaler.
func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(strings.TrimSpace(s))
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var num json.Number
	if err := dec.Decode(&num); err != nil {
		return fmt.Errorf("valor numérico inválido: %s", string(data))
	}
	*n = NumericString(num.String())
	return nil
}

// DeletionResult é a resposta de uma exclusão: confirmação mais os últimos dados conhecidos.
type DeletionResult struct {
	Message   string    `json:"message"`
	Developer Developer `json:"developer"`
}

// DeveloperField é o conjunto fechado de colunas pesquisáveis.
type DeveloperField string

const (
	FieldFullName    DeveloperField = "full_name"
	FieldCellphone   DeveloperField = "cellphone"
	FieldCep         DeveloperField = "cep"
	FieldSpecialties DeveloperField = "specialties"
)

// Valid informa se o campo pertence ao conjunto pesquisável.
func (f DeveloperField) Valid() bool {
	switch f {
	case FieldFullName, FieldCellphone, FieldCep, FieldSpecialties:
		return true
	}
	return false
}
