/*
Package content holds the static marketing catalog served to the landing
pages: room categories with nightly rates and the hotel's service list.

The catalog is immutable configuration, not per-visitor state.
*/
package content

// Room is one bookable category shown in the accommodations section.
type Room struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
}

// Service is one entry in the hotel services section.
type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Testimonial is one guest review shown in the testimonials carousel.
type Testimonial struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Image    string `json:"image"`
}

// Rooms returns the room catalog.
func Rooms() []Room {
	return []Room{
		{
			Type:        "standard",
			Title:       "Solteiro",
			Description: "Quarto aconchegante com cama de solteiro, ideal para viagens a trabalho.",
			Price:       110,
			Capacity:    1,
			Amenities:   []string{"Wi-Fi", "TV de tela plana", "Frigobar"},
		},
		{
			Type:        "standard",
			Title:       "Solteiro com Ar Condicionado",
			Description: "Quarto de solteiro com ar-condicionado e isolamento acústico.",
			Price:       150,
			Capacity:    1,
			Amenities:   []string{"Wi-Fi", "Ar-condicionado", "TV de tela plana", "Frigobar"},
		},
		{
			Type:        "deluxe",
			Title:       "Casal",
			Description: "Quarto espaçoso com cama de casal e vista para o jardim.",
			Price:       190,
			Capacity:    2,
			Amenities:   []string{"Wi-Fi", "TV de tela plana", "Frigobar", "Varanda"},
		},
		{
			Type:        "suite-executiva",
			Title:       "Casal com Ar Condicionado",
			Description: "Suíte de casal com ar-condicionado, banheira e amenidades de luxo.",
			Price:       220,
			Capacity:    2,
			Amenities:   []string{"Wi-Fi", "Ar-condicionado", "TV de tela plana", "Frigobar", "Banheira"},
		},
	}
}

// Services returns the hotel services list.
func Services() []Service {
	return []Service{
		{Title: "Café da Manhã", Description: "Buffet completo servido diariamente das 6h às 10h."},
		{Title: "Wi-Fi de Alta Velocidade", Description: "Internet gratuita em todas as áreas do hotel."},
		{Title: "Estacionamento", Description: "Estacionamento seguro com serviço de manobrista."},
		{Title: "Recepção 24h", Description: "Equipe disponível a qualquer hora para atendê-lo."},
	}
}

// Testimonials returns the guest reviews carousel content.
func Testimonials() []Testimonial {
	return []Testimonial{
		{
			Quote: "Uma experiência inesquecível! O hotel superou todas as nossas expectativas, " +
				"desde o atendimento impecável até a qualidade das acomodações. Definitivamente voltaremos.",
			Author:   "Carlos Oliveira",
			Location: "São Paulo, Brasil",
			Rating:   5,
			Image:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=1170&q=80",
		},
		{
			Quote: "A atenção aos detalhes é impressionante! Desde o momento do check-in até nossa saída, " +
				"nos sentimos verdadeiramente especiais. O café da manhã é excepcional.",
			Author:   "Ana Martins",
			Location: "Rio de Janeiro, Brasil",
			Rating:   5,
			Image:    "https://images.unsplash.com/photo-1544005313-94ddf0286df2?auto=format&fit=crop&w=388&q=80",
		},
		{
			Quote: "As instalações do spa são de outro mundo! Tivemos momentos de puro relaxamento, " +
				"e a equipe atendeu a todas as nossas necessidades com profissionalismo e simpatia.",
			Author:   "Paulo Mendes",
			Location: "Belo Horizonte, Brasil",
			Rating:   4,
			Image:    "https://images.unsplash.com/photo-1566492031773-4f4e44671857?auto=format&fit=crop&w=387&q=80",
		},
	}
}
