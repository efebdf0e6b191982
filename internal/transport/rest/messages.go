package rest

import "github.com/heartmarshall/alfred-backend/internal/domain"

// Messages are the user-facing error texts of one resource.
type Messages struct {
	NotFound     string
	ReadFailed   string
	CreateFailed string
	UpdateFailed string
	DeleteFailed string
}

var messagesByKind = map[domain.Kind]Messages{
	domain.KindTask: {
		NotFound:     "Tarefa não encontrada",
		ReadFailed:   "Erro ao buscar tarefas",
		CreateFailed: "Erro ao criar tarefa",
		UpdateFailed: "Erro ao atualizar tarefa",
		DeleteFailed: "Erro ao excluir tarefa",
	},
	domain.KindEvent: {
		NotFound:     "Evento não encontrado",
		ReadFailed:   "Erro ao buscar eventos",
		CreateFailed: "Erro ao criar evento",
		UpdateFailed: "Erro ao atualizar evento",
		DeleteFailed: "Erro ao excluir evento",
	},
	domain.KindMessage: {
		NotFound:     "Mensagem não encontrada",
		ReadFailed:   "Erro ao buscar mensagens",
		CreateFailed: "Erro ao criar mensagem",
		UpdateFailed: "Erro ao atualizar mensagem",
		DeleteFailed: "Erro ao excluir mensagem",
	},
	domain.KindBill: {
		NotFound:     "Conta não encontrada",
		ReadFailed:   "Erro ao buscar contas",
		CreateFailed: "Erro ao criar conta",
		UpdateFailed: "Erro ao atualizar conta",
		DeleteFailed: "Erro ao excluir conta",
	},
}

// MessagesFor returns the error texts for kind.
func MessagesFor(kind domain.Kind) Messages {
	return messagesByKind[kind]
}
