package questions

// Bank is the full CFA-style scenario catalog. Content is fixed game data;
// prompts are in Spanish as shipped.
var Bank = []Question{
	{
		ID:     "q01",
		Prompt: "Un comité de riesgos propone cubrir la exposición cambiaria elevando el precio en 2%. ¿Cómo respondes?",
		Options: []Option{
			{ID: "A", Text: "Aceptas el aumento para proteger margen", Impact: map[string]float64{"price_delta": 1.0}},
			{ID: "B", Text: "Mantienes precio y refuerzas marketing para ganar cuota", Impact: map[string]float64{"marketing_multiplier": 1.25}},
			{ID: "C", Text: "Reducir producción para priorizar liquidez", Impact: map[string]float64{"production_multiplier": 0.9}},
		},
	},
	{
		ID:     "q02",
		Prompt: "El equipo de ventas pide un descuento táctico del 5% por trimestre para cerrar contratos grandes.",
		Options: []Option{
			{ID: "A", Text: "Aprobado: descuento completo", Impact: map[string]float64{"price_multiplier": 0.95}},
			{ID: "B", Text: "Descuento parcial y más volumen", Impact: map[string]float64{"price_multiplier": 0.97, "production_multiplier": 1.05}},
			{ID: "C", Text: "Sin descuento, en su lugar branding", Impact: map[string]float64{"marketing_multiplier": 1.2}},
		},
	},
	{
		ID:     "q03",
		Prompt: "Finanzas advierte sobre capital de trabajo tensionado. Se sugiere recortar marketing un 20%.",
		Options: []Option{
			{ID: "A", Text: "Aceptas el recorte para liberar caja", Impact: map[string]float64{"marketing_multiplier": 0.8}},
			{ID: "B", Text: "Mantienes marketing pero bajas producción", Impact: map[string]float64{"production_multiplier": 0.9}},
			{ID: "C", Text: "Contrarrestas con subida de precio", Impact: map[string]float64{"price_delta": 2.0}},
		},
	},
	{
		ID:     "q04",
		Prompt: "Un proveedor ofrece pago anticipado con 3% de descuento en costo unitario si produces más.",
		Options: []Option{
			{ID: "A", Text: "Incrementas producción para capturar descuento", Impact: map[string]float64{"production_multiplier": 1.15}},
			{ID: "B", Text: "Mantienes producción y reservas liquidez", Impact: map[string]float64{"production_multiplier": 1.0}},
			{ID: "C", Text: "Bajas precio para rotar inventario", Impact: map[string]float64{"price_multiplier": 0.98}},
		},
	},
	{
		ID:     "q05",
		Prompt: "Marketing propone campaña digital adicional. Requiere +$500 y promete +8% en demanda.",
		Options: []Option{
			{ID: "A", Text: "Apruebas la campaña completa", Impact: map[string]float64{"marketing_delta": 500.0}},
			{ID: "B", Text: "Aprobación parcial y subes precio 1%", Impact: map[string]float64{"marketing_delta": 250.0, "price_multiplier": 1.01}},
			{ID: "C", Text: "Rechazas y reasignas a producción", Impact: map[string]float64{"production_multiplier": 1.05}},
		},
	},
	{
		ID:     "q06",
		Prompt: "Se detecta obsolescencia en inventario. Se propone rebaja temporal del 3% en precio.",
		Options: []Option{
			{ID: "A", Text: "Aplicar rebaja total", Impact: map[string]float64{"price_multiplier": 0.97}},
			{ID: "B", Text: "Rebaja parcial y más marketing de liquidación", Impact: map[string]float64{"price_multiplier": 0.985, "marketing_multiplier": 1.15}},
			{ID: "C", Text: "Sin rebaja, ajustas producción a la baja", Impact: map[string]float64{"production_multiplier": 0.9}},
		},
	},
	{
		ID:     "q07",
		Prompt: "El director comercial sugiere producir 10% más para evitar roturas de stock en Q4.",
		Options: []Option{
			{ID: "A", Text: "Sigues la recomendación", Impact: map[string]float64{"production_multiplier": 1.1}},
			{ID: "B", Text: "Producción neutra y refuerzo de marketing", Impact: map[string]float64{"marketing_multiplier": 1.1}},
			{ID: "C", Text: "Moderación: +5% producción y precio +1", Impact: map[string]float64{"production_multiplier": 1.05, "price_delta": 1.0}},
		},
	},
	{
		ID:     "q08",
		Prompt: "Una auditoría ESG sugiere invertir en eficiencia, reduciendo OPEX futuro pero elevando marketing ahora.",
		Options: []Option{
			{ID: "A", Text: "Incrementas marketing para visibilidad ESG", Impact: map[string]float64{"marketing_multiplier": 1.3}},
			{ID: "B", Text: "Subes precio 2% para financiar la iniciativa", Impact: map[string]float64{"price_multiplier": 1.02}},
			{ID: "C", Text: "Aplazas la iniciativa y mantienes estructura actual", Impact: map[string]float64{}},
		},
	},
	{
		ID:     "q09",
		Prompt: "Competencia lanza producto sustituto 4% más barato. ¿Cuál es tu respuesta?",
		Options: []Option{
			{ID: "A", Text: "Igualas el precio y subes marketing", Impact: map[string]float64{"price_multiplier": 0.96, "marketing_multiplier": 1.2}},
			{ID: "B", Text: "Mantienes precio, refuerzas valor percibido", Impact: map[string]float64{"marketing_multiplier": 1.1}},
			{ID: "C", Text: "Reduces producción para evitar excedentes", Impact: map[string]float64{"production_multiplier": 0.92}},
		},
	},
	{
		ID:     "q10",
		Prompt: "El CFO sugiere priorizar flujo de caja, proponiendo bajar marketing 10% y precio +1%.",
		Options: []Option{
			{ID: "A", Text: "Sigues la recomendación", Impact: map[string]float64{"marketing_multiplier": 0.9, "price_delta": 1.0}},
			{ID: "B", Text: "Solo aplicas la subida de precio", Impact: map[string]float64{"price_delta": 1.0}},
			{ID: "C", Text: "Prefieres impulsar volumen con más producción", Impact: map[string]float64{"production_multiplier": 1.08}},
		},
	},
	{
		ID:     "q11",
		Prompt: "Recibes una línea de crédito barata para financiar crecimiento. ¿Cómo la usas?",
		Options: []Option{
			{ID: "A", Text: "Escalas producción 15%", Impact: map[string]float64{"production_multiplier": 1.15}},
			{ID: "B", Text: "Campaña masiva de marketing", Impact: map[string]float64{"marketing_multiplier": 1.4}},
			{ID: "C", Text: "Equilibrio: +5% precio y +5% marketing", Impact: map[string]float64{"price_multiplier": 1.05, "marketing_multiplier": 1.05}},
		},
	},
	{
		ID:     "q12",
		Prompt: "Clientes corporativos piden contratos a plazo con descuento pero pagos adelantados.",
		Options: []Option{
			{ID: "A", Text: "Aceptas descuento 2% para asegurar volumen", Impact: map[string]float64{"price_multiplier": 0.98, "production_multiplier": 1.07}},
			{ID: "B", Text: "Rechazas descuento y mantienes mix actual", Impact: map[string]float64{}},
			{ID: "C", Text: "Compensas con campaña de upselling", Impact: map[string]float64{"marketing_multiplier": 1.15}},
		},
	},
	{
		ID:     "q13",
		Prompt: "El comité de auditoría sugiere construir inventario defensivo ante riesgo de supply chain.",
		Options: []Option{
			{ID: "A", Text: "Construyes inventario: +12% producción", Impact: map[string]float64{"production_multiplier": 1.12}},
			{ID: "B", Text: "Producción neutra, reservas liquidez", Impact: map[string]float64{}},
			{ID: "C", Text: "Optimización: +5% producción y +1 en precio", Impact: map[string]float64{"production_multiplier": 1.05, "price_delta": 1.0}},
		},
	},
	{
		ID:     "q14",
		Prompt: "Se detecta caída en ROI de marketing. Se proponen recortes y reorientación a pricing.",
		Options: []Option{
			{ID: "A", Text: "Recortas 15% marketing y subes precio 1%", Impact: map[string]float64{"marketing_multiplier": 0.85, "price_multiplier": 1.01}},
			{ID: "B", Text: "Mantienes marketing y subes producción", Impact: map[string]float64{"production_multiplier": 1.08}},
			{ID: "C", Text: "Experimentas: +5% marketing con storytelling ESG", Impact: map[string]float64{"marketing_multiplier": 1.05}},
		},
	},
	{
		ID:     "q15",
		Prompt: "El consejo pide acelerar ROE mediante mayor apalancamiento operativo.",
		Options: []Option{
			{ID: "A", Text: "Subes producción 18%", Impact: map[string]float64{"production_multiplier": 1.18}},
			{ID: "B", Text: "Subes precio 3% para mejorar margen", Impact: map[string]float64{"price_multiplier": 1.03}},
			{ID: "C", Text: "Blend: +8% producción y +1% precio", Impact: map[string]float64{"production_multiplier": 1.08, "price_multiplier": 1.01}},
		},
	},
	{
		ID:     "q16",
		Prompt: "Se plantea reducción táctica de inventario para liberar capital de trabajo.",
		Options: []Option{
			{ID: "A", Text: "Bajas producción 12%", Impact: map[string]float64{"production_multiplier": 0.88}},
			{ID: "B", Text: "Aumentas precio 2% para frenar ventas menos rentables", Impact: map[string]float64{"price_multiplier": 1.02}},
			{ID: "C", Text: "Más marketing para acelerar rotación", Impact: map[string]float64{"marketing_multiplier": 1.18}},
		},
	},
	{
		ID:     "q17",
		Prompt: "Una encuesta revela sensibilidad al precio menor a la estimada. ¿Cómo capturas valor?",
		Options: []Option{
			{ID: "A", Text: "Incrementas precio 4%", Impact: map[string]float64{"price_multiplier": 1.04}},
			{ID: "B", Text: "Mantienes precio y elevas marketing premium", Impact: map[string]float64{"marketing_multiplier": 1.25}},
			{ID: "C", Text: "Subes producción para aprovechar demanda", Impact: map[string]float64{"production_multiplier": 1.1}},
		},
	},
	{
		ID:     "q18",
		Prompt: "La tesorería detecta exceso de caja no asignada. Se sugiere invertir en crecimiento orgánico.",
		Options: []Option{
			{ID: "A", Text: "Financias marketing intensivo", Impact: map[string]float64{"marketing_multiplier": 1.35}},
			{ID: "B", Text: "Rebajas precio 2% para impulsar volumen", Impact: map[string]float64{"price_multiplier": 0.98}},
			{ID: "C", Text: "Balanceas: +6% producción y +1% precio", Impact: map[string]float64{"production_multiplier": 1.06, "price_multiplier": 1.01}},
		},
	},
	{
		ID:     "q19",
		Prompt: "La Junta evalúa expandir a un nicho premium con menor elasticidad de precio.",
		Options: []Option{
			{ID: "A", Text: "Estrategia premium: +6% precio, marketing +10%", Impact: map[string]float64{"price_multiplier": 1.06, "marketing_multiplier": 1.1}},
			{ID: "B", Text: "Piloto moderado: +3% precio y producción estable", Impact: map[string]float64{"price_multiplier": 1.03}},
			{ID: "C", Text: "Esperas datos, priorizas liquidez", Impact: map[string]float64{"production_multiplier": 0.95}},
		},
	},
	{
		ID:     "q20",
		Prompt: "Un comité de supply chain recomienda horas extra para aprovechar capacidad ociosa.",
		Options: []Option{
			{ID: "A", Text: "Aumentas producción 20%", Impact: map[string]float64{"production_multiplier": 1.2}},
			{ID: "B", Text: "Producción +10% y marketing +5%", Impact: map[string]float64{"production_multiplier": 1.1, "marketing_multiplier": 1.05}},
			{ID: "C", Text: "No cambias producción, subes precio 1%", Impact: map[string]float64{"price_multiplier": 1.01}},
		},
	},
}
