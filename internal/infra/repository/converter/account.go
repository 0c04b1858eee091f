package converter

import (
	"cuponx-backend/internal/domain/account"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
	"cuponx-backend/internal/pkg/pgconv"
)

func OperatorToSnapshot(row sqlc.AdministradoresCuponx) account.Snapshot {
	return account.Snapshot{
		ID:           row.ID,
		Role:         account.RoleOperator,
		Email:        row.Correo,
		PasswordHash: row.PasswordHash,
		Active:       row.Activo,
		DisplayName:  fullName(row.Nombres, row.Apellidos),
	}
}

// The merchant row doubles as the merchant-admin account.
func MerchantAccountToSnapshot(row sqlc.Empresas) account.Snapshot {
	id := row.ID
	return account.Snapshot{
		ID:           row.ID,
		Role:         account.RoleMerchantAdmin,
		Email:        row.Correo,
		PasswordHash: row.PasswordHash,
		Active:       row.Activo,
		DisplayName:  row.Nombre,
		MerchantID:   &id,
	}
}

func EmployeeToSnapshot(row sqlc.AdministradoresEmpresas) account.Snapshot {
	merchantID := row.EmpresaID
	return account.Snapshot{
		ID:           row.ID,
		Role:         account.RoleEmployee,
		Email:        row.Correo,
		PasswordHash: row.PasswordHash,
		Active:       row.Activo,
		DisplayName:  fullName(row.Nombres, row.Apellidos),
		MerchantID:   &merchantID,
	}
}

func ConsumerToSnapshot(row sqlc.Clientes) account.Snapshot {
	return account.Snapshot{
		ID:           row.ID,
		Role:         account.RoleConsumer,
		Email:        row.Correo,
		PasswordHash: row.PasswordHash,
		Active:       row.Activo,
		DisplayName:  fullName(row.Nombres, row.Apellidos),
		Verified:     row.Verificado,
		NationalID:   row.Dui,
		VerifiedAt:   pgconv.TimePtrFromPgtype(row.VerificadoAt),
	}
}

func RegistrationToCreateParams(reg *account.ConsumerRegistration) sqlc.CreateConsumerParams {
	return sqlc.CreateConsumerParams{
		Nombres:           reg.FirstNames(),
		Apellidos:         reg.LastNames(),
		Telefono:          reg.Phone(),
		Correo:            reg.Email().Value(),
		Direccion:         reg.Address(),
		Dui:               reg.NationalID().Value(),
		PasswordHash:      reg.PasswordHash(),
		TokenVerificacion: pgconv.StringToPgtype(reg.VerificationToken()),
	}
}

func fullName(first, last string) string {
	if last == "" {
		return first
	}
	return first + " " + last
}
