package main

import (
	"runtime/debug"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
)

const dynamoModule = "github.com/aws/aws-sdk-go-v2/service/dynamodb"

// Variável injetável para testes
var readBuildInfo = debug.ReadBuildInfo

// dynamoClientVersion retorna a versão do módulo service/dynamodb embutida
// no binário, sem o prefixo "v". Sem essa informação usa aws.SDKVersion.
func dynamoClientVersion() string {
	info, ok := readBuildInfo()
	if !ok {
		return aws.SDKVersion
	}
	for _, dep := range info.Deps {
		if dep.Path != dynamoModule {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			dep = dep.Replace
		}
		if dep.Version != "" && dep.Version != "(devel)" {
			return strings.TrimPrefix(dep.Version, "v")
		}
	}
	return aws.SDKVersion
}
