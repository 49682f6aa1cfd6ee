package main

import (
	"context"
	"os"

	"horas-api/internal/cli"
)

//	@title						API - Gerenciamento de Horas
//	@version					1.0.0
//	@description				Cadastro de funcionários, cargos e usuários com autenticação JWT.
//	@BasePath					/api
//	@securityDefinitions.apikey	bearerAuth
//	@in							header
//	@name						Authorization
//	@description				Token JWT no formato: Bearer <token>
func main() {
	if err := cli.RootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
