package directory

import "github.com/brunohpsv/medagendar/internal/schedule"

// Specialties is the catalog offered by the marketplace filters and the
// professional signup form.
var Specialties = []string{
	"Cardiologia", "Dermatologia", "Pediatria", "Ortopedia", "Ginecologia",
	"Psiquiatria", "Oftalmologia", "Neurologia", "Endocrinologia", "Estética",
	"Medicina Esportiva",
}

// SeedDoctors returns the demo providers loaded when the store is empty.
// Schedules are left empty here; the caller regenerates them from each
// doctor's work configuration for the current booking window.
func SeedDoctors() []Doctor {
	return []Doctor{
		{
			ID:            "1",
			Name:          "Dra. Beatriz Menezes",
			Specialties:   []string{"Dermatologia", "Estética"},
			Rating:        4.9,
			Reviews:       156,
			Location:      "Jardins, São Paulo",
			ClinicAddress: "Av. Paulista, 1000 - Conjunto 52",
			Image:         "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?auto=format&fit=crop&q=80&w=400",
			Bio:           "Especialista em estética facial.",
			FullBio:       "Dra. Beatriz é referência em dermatologia clínica e estética, com mestrado pela USP.",
			Price:         450,
			PriceType:     PriceFixed,
			AcceptsOnline: true,
			Education:     []string{"Graduação em Medicina - USP", "Residência Médica - HC-FMUSP"},
			WorkConfig:    schedule.DefaultWorkConfig(),
		},
		{
			ID:            "2",
			Name:          "Dr. Lucas Viana",
			Specialties:   []string{"Ortopedia", "Medicina Esportiva"},
			Rating:        4.8,
			Reviews:       92,
			Location:      "Ipanema, Rio de Janeiro",
			ClinicAddress: "Rua Visconde de Pirajá, 500",
			Image:         "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?auto=format&fit=crop&q=80&w=400",
			Bio:           "Cirurgião ortopedista focado em medicina esportiva.",
			FullBio:       "Com mais de 10 anos acompanhando atletas profissionais.",
			Price:         380,
			PriceType:     PriceClinic,
			AcceptsOnline: false,
			Education:     []string{"Medicina - UFRJ", "Especialização - UNIFESP"},
			WorkConfig:    schedule.DefaultWorkConfig(),
		},
	}
}
