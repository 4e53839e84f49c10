// dyntable imprime todos os itens de uma tabela do DynamoDB como uma
// tabela de terminal.
//
// Uso:
//
//	dyntable --table Users [--region us-east-1] [--info]
//
// Variáveis de ambiente:
//
//	DYNTABLE_LOG_LEVEL       trace|debug|info|warn|error (padrão: warn)
//	DYNTABLE_LOG_FORMAT      console|json (padrão: console)
//	DYNTABLE_STATSD_ENABLED  envia métricas do Scan para o DogStatsD
//	DYNTABLE_STATSD_ADDR     endereço do agente (padrão: 127.0.0.1:8125)
//	NO_COLOR                 desativa as cores
//
// Credenciais e região seguem a cadeia padrão do SDK da AWS.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runMain(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// runMain executa o comando e devolve o código de saída do processo.
// Qualquer erro vira uma única linha "dyntable: <erro>" em stderr e código 1.
func runMain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "dyntable: %v\n", err)
		return 1
	}
	return 0
}
