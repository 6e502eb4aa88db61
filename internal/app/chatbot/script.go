package chatbot

import "fmt"

// The canned script of the Serenity Hotel assistant. Response texts follow the
// hotel's published information (restaurants, schedules, rates); changing them
// here changes what every conversation says.

const greetingText = "Olá! Sou o assistente virtual do Serenity Hotel. Como posso ajudar você hoje?"

const fallbackText = "Não entendi completamente sua pergunta. Posso ajudar com informações sobre reservas, " +
	"quartos, restaurantes, check-in/out, instalações como piscina e spa, estacionamento, Wi-Fi ou política para pets."

// initialOptions is the top-level menu offered by the greeting and by the
// fallback reply.
func initialOptions() []Option {
	return []Option{
		{Label: "Fazer uma reserva", Action: ActionReservation},
		{Label: "Consultar reserva", Action: ActionInquiry},
		{Label: "Nossos serviços", Action: ActionServices},
		{Label: "Falar com atendimento", Action: ActionSupport},
		{Label: "Deixar um feedback", Action: ActionFeedback},
	}
}

// closingOptions lets the guest return to the menu or end the conversation.
func closingOptions() []Option {
	return []Option{
		{Label: "Voltar ao início", Action: ActionStart},
		{Label: "Encerrar conversa", Action: ActionEnd},
	}
}

// scriptTable builds the static action table. Every handler is pure: the reply
// depends only on the action and, for expected-input actions, the user's text.
func scriptTable() map[ActionID]handlerFunc {
	return map[ActionID]handlerFunc{
		ActionStart: func(string) Reply {
			return Reply{Text: greetingText, Options: initialOptions()}
		},

		ActionReservation: func(string) Reply {
			return Reply{
				Text: "Para fazer uma reserva, você pode utilizar nosso sistema online ou ligar para " +
					"+55 (11) 9876-5432. Posso ajudar com mais informações sobre disponibilidade, " +
					"tipos de quarto ou tarifas?",
				Options: []Option{
					{Label: "Reservar agora", Action: ActionBookNow},
					{Label: "Informações sobre os quartos", Action: ActionRoomInfo},
				},
			}
		},

		ActionBookNow: func(input string) Reply {
			if input == "" {
				return Reply{
					Text: "Ótimo! Informe as datas de check-in e check-out desejadas " +
						"(por exemplo: 10/09 a 14/09) para verificarmos a disponibilidade.",
					Expect: InputDates,
				}
			}
			return Reply{
				Text: fmt.Sprintf("Perfeito! Vamos verificar a disponibilidade para %s. "+
					"Nossa equipe de reservas entrará em contato em breve para confirmar.", input),
				Options: closingOptions(),
			}
		},

		ActionRoomInfo: func(string) Reply {
			return Reply{
				Text: "Temos diversos tipos de quartos e suítes, desde Standard até Suítes Presidenciais. " +
					"Todos incluem Wi-Fi, ar-condicionado, TV de tela plana, minibar e amenidades de luxo. " +
					"Algum tipo específico que gostaria de conhecer?",
				Options: []Option{
					{Label: "Reservar agora", Action: ActionBookNow},
					{Label: "Voltar ao início", Action: ActionStart},
					{Label: "Encerrar conversa", Action: ActionEnd},
				},
			}
		},

		ActionInquiry: func(input string) Reply {
			if input == "" {
				return Reply{
					Text:   "Claro! Informe o e-mail utilizado na reserva para que eu possa localizá-la.",
					Expect: InputEmail,
				}
			}
			return Reply{
				Text: fmt.Sprintf("Obrigado! Localizaremos a reserva associada a %s e enviaremos "+
					"os detalhes para esse e-mail em instantes.", input),
				Options: closingOptions(),
			}
		},

		ActionServices: func(string) Reply {
			return Reply{
				Text: "O Serenity Hotel oferece café da manhã, Wi-Fi de alta velocidade, estacionamento " +
					"com manobrista e recepção 24 horas. Sobre o que você gostaria de saber mais?",
				Options: []Option{
					{Label: "Restaurantes", Action: ActionRestaurants},
					{Label: "Piscina e spa", Action: ActionLeisure},
					{Label: "Estacionamento e Wi-Fi", Action: ActionAmenities},
					{Label: "Política para pets", Action: ActionPets},
					{Label: "Voltar ao início", Action: ActionStart},
				},
			}
		},

		ActionRestaurants: func(string) Reply {
			return Reply{
				Text: "Nosso hotel conta com 3 restaurantes: o Terrazzo (culinária internacional), " +
					"o Sakura (japonês) e o Olivetto (italiano). Servimos café da manhã das 6h às 10h, " +
					"almoço das 12h às 15h e jantar das 19h às 23h.",
				Options: closingOptions(),
			}
		},

		ActionLeisure: func(string) Reply {
			return Reply{
				Text: "Temos uma piscina ao ar livre no terraço com vista panorâmica e uma piscina interna " +
					"aquecida no spa, das 7h às 22h. Nosso spa oferece tratamentos, massagens e terapias, " +
					"diariamente das 9h às 21h. Recomendamos reservar seu tratamento com antecedência.",
				Options: closingOptions(),
			}
		},

		ActionAmenities: func(string) Reply {
			return Reply{
				Text: "Oferecemos Wi-Fi gratuito de alta velocidade em todas as áreas do hotel, além de " +
					"serviço de manobrista e estacionamento seguro. O valor da diária do estacionamento " +
					"é de R$40,00.",
				Options: closingOptions(),
			}
		},

		ActionPets: func(string) Reply {
			return Reply{
				Text: "Somos pet-friendly! Aceitamos animais de pequeno porte com taxa adicional de R$80 " +
					"por dia. Temos amenidades especiais para seu pet.",
				Options: closingOptions(),
			}
		},

		ActionCheckIn: func(string) Reply {
			return Reply{
				Text: "O check-in pode ser realizado a partir das 14h. Para early check-in, recomendamos " +
					"solicitar antecipadamente, sujeito à disponibilidade.",
				Options: closingOptions(),
			}
		},

		ActionCheckOut: func(string) Reply {
			return Reply{
				Text: "Nosso horário de check-out é às 12h, mas podemos oferecer late check-out até às 14h " +
					"mediante disponibilidade. Há alguma data específica para sua saída?",
				Options: closingOptions(),
			}
		},

		ActionSupport: func(string) Reply {
			return Reply{
				Text: "Nossa equipe de atendimento está disponível 24 horas pelo telefone " +
					"+55 (11) 9876-5432 ou pelo e-mail contato@serenityhotel.com.br.",
				Options: closingOptions(),
			}
		},

		ActionFeedback: func(input string) Reply {
			if input == "" {
				return Reply{
					Text:   "Sua opinião é muito importante para nós! Conte como foi sua experiência no Serenity Hotel.",
					Expect: InputFeedback,
				}
			}
			return Reply{
				Text:    "Muito obrigado pelo seu feedback! Ele foi registrado e será compartilhado com nossa equipe.",
				Options: closingOptions(),
			}
		},

		ActionEnd: func(string) Reply {
			return Reply{
				Text: "Obrigado pelo contato! Estamos à disposição sempre que precisar. Até logo!",
				Options: []Option{
					{Label: "Iniciar nova conversa", Action: ActionStart},
				},
			}
		},
	}
}

// keywordRule binds a substring to the action it triggers.
type keywordRule struct {
	keyword string
	action  ActionID
}

// keywordRules is the free-text fallback table, checked in order with
// case-insensitive substring matching. First match wins.
func keywordRules() []keywordRule {
	return []keywordRule{
		{"reserva", ActionReservation},
		{"quarto", ActionRoomInfo},
		{"restaurante", ActionRestaurants},
		{"check-out", ActionCheckOut},
		{"checkout", ActionCheckOut},
		{"check-in", ActionCheckIn},
		{"checkin", ActionCheckIn},
		{"piscina", ActionLeisure},
		{"spa", ActionLeisure},
		{"estacionamento", ActionAmenities},
		{"wifi", ActionAmenities},
		{"wi-fi", ActionAmenities},
		{"pet", ActionPets},
		{"atendimento", ActionSupport},
		{"feedback", ActionFeedback},
	}
}
