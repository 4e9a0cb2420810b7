package triage

import "context"

// Client suggests medical specialties from free-text input. Implementations
// call an external text-generation service; callers see prose only.
type Client interface {
	// Analyze suggests the most suitable specialty for a symptom description.
	Analyze(ctx context.Context, symptoms string) (string, error)
	// RecommendSpecialists suggests specialties matching a search query.
	RecommendSpecialists(ctx context.Context, query string) (string, error)
}

const systemInstruction = "Você é um assistente médico inteligente do site MedAgendar. " +
	"Seu papel é ajudar pacientes a encontrar a especialidade correta baseada em sintomas descritos, " +
	"sempre mantendo um tom profissional e acolhedor."

const (
	// AnalyzeFallback is returned to the patient whenever the external
	// service fails; triage never surfaces a hard error.
	AnalyzeFallback = "Desculpe, tive um problema ao analisar seus sintomas. " +
		"Por favor, tente novamente ou procure um clínico geral."

	// RecommendFallback is the degraded reply for specialist recommendations.
	RecommendFallback = "Não consegui processar sua busca inteligente agora."
)
