// Package catalog holds the built-in menu of the Centro de Formación Minerva.
//
// The texts are served to deployed clients as they are; edit them only
// together with the clients that render them.
package catalog

import "github.com/aretw0/minerva/pkg/domain"

// StartNodeID is the node every new user is positioned at.
const StartNodeID = "inicio"

// TerminalNodeID is the closing node of the conversation.
const TerminalNodeID = "fin"

const (
	msgInicio = "👋 ¡Hola! Soy MinervaBot, tu asistente virtual del Centro de Formación Minerva.\n" +
		"\n" +
		"¿Sobre qué área quieres información?\n" +
		"1️⃣ Sociosanitario\n" +
		"2️⃣ Administrativo\n" +
		"3️⃣ Auxiliar de enfermería\n" +
		"4️⃣ Cajero reponedor\n" +
		"5️⃣ Ver todos los cursos"

	msgSociosanitario = "Has elegido el área *Sociosanitaria* 🏥.\n" +
		"¿Qué quieres hacer?\n" +
		"1️⃣ Ver catálogo de cursos\n" +
		"2️⃣ Volver al menú principal"

	msgSociosanitarioInfo = "📘 Aquí tienes el catálogo de formación sociosanitaria:\n" +
		"[Catálogo de Atención Sociosanitaria a Personas Dependientes en Instituciones Sociales](https://www.formacionminerva.com/wp-content/uploads/2025/05/Catalogo-de-ATENCION-SOCIOSANITARIA-A-PERSONAS-DEPENDIENTES-EN-INSTITUCIONES-SOCIALES-.pdf)\n" +
		"\n" +
		"¿Quieres ver otro área? (sí / no)"

	msgAdministrativo = "Has elegido el área *Administrativa* 💼.\n" +
		"1️⃣ Ver catálogo\n" +
		"2️⃣ Volver al menú principal"

	msgAdministrativoInfo = "📘 Catálogo del área administrativa:\n" +
		"[Catálogo de Auxiliar Administrativo](https://www.formacionminerva.com/wp-content/uploads/2025/05/Catalogo-de-Auxiliar-administrativo-2.pdf)\n" +
		"\n" +
		"¿Quieres ver otro área? (sí / no)"

	msgEnfermeria = "Área *Auxiliar de enfermería* 👩‍⚕️.\n" +
		"1️⃣ Ver catálogo\n" +
		"2️⃣ Volver al menú principal"

	msgEnfermeriaInfo = "📘 Catálogo del curso de auxiliar de enfermería:\n" +
		"[Catálogo de Auxiliar de Enfermería](https://www.formacionminerva.com/wp-content/uploads/2024/12/CATALOGO-NUEVO-CURSO-AUXILIAR-DE-ENFERMERIA-1-1.pdf)\n" +
		"\n" +
		"¿Quieres ver otro área? (sí / no)"

	msgCajero = "Área *Cajero reponedor* 🛒.\n" +
		"1️⃣ Ver catálogo\n" +
		"2️⃣ Volver al menú principal"

	msgCajeroInfo = "📘 Catálogo del curso de cajero reponedor:\n" +
		"[Catálogo de Cajero Reponedor](https://www.formacionminerva.com/wp-content/uploads/2025/05/Catalogo-de-Cajero-Reponedor-.pdf)\n" +
		"\n" +
		"¿Quieres ver otro área? (sí / no)"

	msgGeneral = "Aquí tienes todos nuestros cursos disponibles 🎓:\n" +
		"[Ver todos los cursos](https://www.formacionminerva.com/cursos/)\n" +
		"\n" +
		"¿Quieres volver al menú principal? (sí / no)"

	msgFin = "¡Perfecto! 😊 Si necesitas más información, solo envíame un mensaje cuando quieras."
)

// Nodes returns a fresh copy of the Minerva menu.
func Nodes() []domain.Node {
	return []domain.Node{
		{
			ID:      "inicio",
			Message: msgInicio,
			Options: map[string]string{
				"1": "sociosanitario",
				"2": "administrativo",
				"3": "enfermeria",
				"4": "cajero",
				"5": "general",
			},
		},
		{
			ID:      "sociosanitario",
			Message: msgSociosanitario,
			Options: map[string]string{
				"1": "sociosanitario_info",
				"2": "inicio",
			},
		},
		{
			ID:      "sociosanitario_info",
			Message: msgSociosanitarioInfo,
			Options: map[string]string{
				"sí": "inicio",
				"si": "inicio",
				"no": "fin",
			},
		},
		{
			ID:      "administrativo",
			Message: msgAdministrativo,
			Options: map[string]string{
				"1": "administrativo_info",
				"2": "inicio",
			},
		},
		{
			ID:      "administrativo_info",
			Message: msgAdministrativoInfo,
			Options: map[string]string{
				"sí": "inicio",
				"si": "inicio",
				"no": "fin",
			},
		},
		{
			ID:      "enfermeria",
			Message: msgEnfermeria,
			Options: map[string]string{
				"1": "enfermeria_info",
				"2": "inicio",
			},
		},
		{
			ID:      "enfermeria_info",
			Message: msgEnfermeriaInfo,
			Options: map[string]string{
				"sí": "inicio",
				"si": "inicio",
				"no": "fin",
			},
		},
		{
			ID:      "cajero",
			Message: msgCajero,
			Options: map[string]string{
				"1": "cajero_info",
				"2": "inicio",
			},
		},
		{
			ID:      "cajero_info",
			Message: msgCajeroInfo,
			Options: map[string]string{
				"sí": "inicio",
				"si": "inicio",
				"no": "fin",
			},
		},
		{
			ID:      "general",
			Message: msgGeneral,
			Options: map[string]string{
				"sí": "inicio",
				"si": "inicio",
				"no": "fin",
			},
		},
		{
			ID:      "fin",
			Message: msgFin,
			Options: map[string]string{},
		},
	}
}
