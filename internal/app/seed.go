package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/alfred-backend/internal/auth"
	"github.com/heartmarshall/alfred-backend/internal/domain"
)

const day = 24 * time.Hour

func ptr[T any](v T) *T { return &v }

// seedDemo creates the demo user and its sample records unless a user with
// that username already exists. It reports whether anything was created.
func seedDemo(ctx context.Context, logger *slog.Logger, st *storage, passwords auth.PasswordVerifier, username string, now time.Time) (bool, error) {
	_, err := st.users.GetByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, fmt.Errorf("look up demo user: %w", err)
	}

	hash, err := passwords.Hash("password")
	if err != nil {
		return false, fmt.Errorf("hash demo password: %w", err)
	}

	user, err := st.users.Create(ctx, domain.User{
		Username:       username,
		Password:       hash,
		DisplayName:    "Bruce Wayne",
		Email:          "bruce@wayneenterprises.com",
		ProfilePicture: ptr("https://i.pravatar.cc/150?u=demo"),
		Role:           "admin",
	})
	if err != nil {
		return false, fmt.Errorf("create demo user: %w", err)
	}

	now = now.UTC()
	uid := user.ID

	for _, t := range []domain.Task{
		{Title: "Reunião com equipe de desenvolvimento", Description: ptr("Discussão sobre novos recursos do projeto"), DueDate: ptr(now.Add(day)), Priority: domain.PriorityHigh},
		{Title: "Revisar relatórios financeiros", Description: ptr("Análise dos resultados do último trimestre"), DueDate: ptr(now.Add(3 * day)), Priority: domain.PriorityMedium},
		{Title: "Atualizar software antivírus", Description: ptr("Instalar a última versão nos servidores"), DueDate: ptr(now.Add(5 * day)), Priority: domain.PriorityLow},
	} {
		t.UserID, t.CreatedAt = uid, now
		if _, err := st.tasks.Create(ctx, t); err != nil {
			return false, fmt.Errorf("create demo task: %w", err)
		}
	}

	for _, e := range []domain.Event{
		{Title: "Apresentação de projeto", Description: ptr("Demonstração dos novos recursos para os investidores"), Location: ptr("Sala de Conferências"),
			StartDate: now.Add(2 * day), EndDate: ptr(now.Add(2*day + 2*time.Hour)), Priority: domain.PriorityHigh},
		{Title: "Almoço com parceiros", Description: ptr("Discussão de novas parcerias estratégicas"), Location: ptr("Restaurante Central"),
			StartDate: now.Add(4 * day), EndDate: ptr(now.Add(4*day + 90*time.Minute)), Priority: domain.PriorityMedium},
		{Title: "Conferência de Tecnologia", Description: ptr("Participação como palestrante sobre IA"), Location: ptr("Centro de Convenções"),
			StartDate: now.Add(10 * day), EndDate: ptr(now.Add(12 * day)), Priority: domain.PriorityMedium},
	} {
		e.UserID, e.CreatedAt = uid, now
		if _, err := st.events.Create(ctx, e); err != nil {
			return false, fmt.Errorf("create demo event: %w", err)
		}
	}

	for _, m := range []domain.Message{
		{SenderName: "Ana Oliveira", SenderEmail: ptr("ana@empresa.com"), Subject: "Proposta de colaboração",
			Content: "Olá Bruce, gostaria de discutir uma possível parceria entre nossas empresas. Podemos marcar uma reunião na próxima semana?", Source: "email"},
		{SenderName: "Carlos Santos", SenderEmail: ptr("carlos@tech.com"), Subject: "Relatório mensal",
			Content: "Segue anexo o relatório de desempenho do último mês. Os resultados foram bem positivos!", Source: "email", Read: true},
		{SenderName: "Luiz Silva", SenderEmail: ptr("+5511999887766"), Subject: "Confirmação de presença",
			Content: "Bruce, confirmo minha presença na reunião de amanhã às 14h. Abraços!", Source: "whatsapp"},
	} {
		m.UserID, m.ReceivedAt = uid, now
		if _, err := st.messages.Create(ctx, m); err != nil {
			return false, fmt.Errorf("create demo message: %w", err)
		}
	}

	for _, b := range []domain.Bill{
		{Name: "Conta de Luz", Description: ptr("Fatura mensal de energia elétrica"), Amount: "250,00", DueDate: now.Add(5 * day), Category: ptr("Utilidades")},
		{Name: "Aluguel do Escritório", Description: ptr("Pagamento mensal do espaço comercial"), Amount: "3.500,00", DueDate: now.Add(10 * day), Category: ptr("Imóveis")},
		{Name: "Assinatura de Software", Description: ptr("Licença anual do pacote de design"), Amount: "1.200,00", DueDate: now.Add(15 * day), Category: ptr("Tecnologia"), Paid: true},
	} {
		b.UserID, b.CreatedAt = uid, now
		if _, err := st.bills.Create(ctx, b); err != nil {
			return false, fmt.Errorf("create demo bill: %w", err)
		}
	}

	logger.InfoContext(ctx, "demo data created", slog.Int64("user_id", uid), slog.String("username", username))
	return true, nil
}
