// Package export serializes a finished assessment into the downloadable
// spreadsheet: one sheet per questionnaire section with the fixed
// question/answer layout, plus the computed metrics and the selected offer.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fitclub/wellness-api/session"
)

type row struct {
	key   string
	value any
}

// Workbook builds the evaluation spreadsheet for a session. The caller owns
// the returned file and should Close it after writing.
func Workbook(s *session.Session, a session.Assessment) (*excelize.File, error) {
	f := excelize.NewFile()

	market := s.Market()
	cur := market.CurrencySymbol

	perfil := []row{
		{"¿Cuál es tu nombre completo?", s.Profile.Name},
		{"¿Cuál es tu correo electrónico?", s.Profile.Email},
		{"¿Cuál es tu número de teléfono?", s.Profile.Phone},
		{"¿En qué ciudad vives?", s.Profile.City},
		{"¿Cuál es tu fecha de nacimiento?", s.Profile.Birthdate},
		{"¿Cuál es tu género?", s.Profile.Gender},
		{"País seleccionado", s.Country},
		{"Altura (cm)", s.Body.HeightCm},
		{"Peso (kg)", s.Body.WeightKg},
		{"% de grasa estimado", s.Body.FatPercent},
	}

	estilo := []row{
		{"¿A qué hora despiertas y a qué hora te vas a dormir?", s.Lifestyle.Schedule},
		{"¿Tomas desayuno todos los días? ¿A qué hora?", s.Lifestyle.BreakfastTime},
		{"¿Qué sueles desayunar?", s.Lifestyle.BreakfastFood},
		{"¿Comes entre comidas? ¿Qué sueles comer?", s.Lifestyle.Snacking},
		{"¿Cuántas porciones de frutas y verduras comes al día?", s.Lifestyle.FruitPortions},
		{"¿Tiendes a comer de más por las noches?", s.Lifestyle.NightEating},
		{"¿Cuál es tu mayor reto respecto a la comida?", s.Lifestyle.FoodChallenge},
		{"¿Tomas por lo menos 8 vasos de agua al día?", s.Lifestyle.WaterGlasses},
		{"¿Tomas bebidas alcohólicas? ¿Cuántas veces al mes?", s.Lifestyle.AlcoholMonthly},
		{"¿En qué momento del día sientes menos energía?", s.Lifestyle.LowEnergyTime},
		{"¿Practicas actividad física al menos 3 veces/semana?", s.Lifestyle.Activity},
		{"¿Has intentado algo antes para verte/estar mejor?", s.Lifestyle.PastAttempts},
		{"¿Qué es lo que más se te complica?", s.Lifestyle.Struggles},
		{"¿Consideras que cuidar de ti es una prioridad?", s.Lifestyle.SelfPriority},
		{"¿Consideras valioso optimizar tu presupuesto?", s.Lifestyle.ValuesOptimizing},
	}

	metas := []row{
		{"Perder Peso", s.Goals.LoseWeight},
		{"Tonificar / Bajar Grasa", s.Goals.Tone},
		{"Aumentar Masa Muscular", s.Goals.MuscleGain},
		{"Aumentar Energía", s.Goals.Energy},
		{"Mejorar Rendimiento Físico", s.Goals.Performance},
		{"Mejorar Salud", s.Goals.Health},
		{"Otros", s.Goals.Other},
		{"¿Qué talla te gustaría ser?", s.Objectives.TargetSize},
		{"¿Qué partes del cuerpo te gustaría mejorar?", s.Objectives.BodyParts},
		{"¿Qué tienes en tu ropero que podamos usar como meta?", s.Objectives.WardrobeGoal},
		{"¿Cómo te beneficia alcanzar tu meta?", s.Objectives.Benefit},
		{"¿Qué eventos tienes en los próximos 3 o 6 meses?", s.Objectives.Events},
		{"Nivel de compromiso (1-10)", s.Objectives.Commitment},
		{fmt.Sprintf("Gasto diario en comida (%s)", cur), s.Budget.FoodDaily},
		{fmt.Sprintf("Gasto diario en snacks (%s)", cur), s.Budget.SnacksDaily},
		{fmt.Sprintf("Gasto semanal en bebidas (%s)", cur), s.Budget.DrinksWeekly},
		{fmt.Sprintf("Gasto semanal en deliveries/salidas (%s)", cur), s.Budget.DeliveriesWeekly},
	}

	composicion := []row{
		{"IMC", a.BMI},
		{"Requerimiento de hidratación (ml/día)", a.HydrationMl},
		{"Requerimiento de proteína (g/día)", a.ProteinG},
		{"Metabolismo en reposo (kcal/día)", a.BMR},
		{"Objetivo calórico (kcal/día)", a.CaloricTarget},
	}

	condiciones := []row{
		{"¿Estreñimiento?", s.Flags.Constipation},
		{"¿Colesterol Alto?", s.Flags.HighCholesterol},
		{"¿Baja Energía?", s.Flags.LowEnergy},
		{"¿Dolor Muscular?", s.Flags.MusclePain},
		{"¿Gastritis?", s.Flags.Gastritis},
		{"¿Hemorroides?", s.Flags.Hemorrhoids},
		{"¿Hipertensión?", s.Flags.Hypertension},
		{"¿Dolor Articular?", s.Flags.JointPain},
		{"¿Ansiedad por comer?", s.Flags.AnxietyEating},
		{"¿Jaquecas / Migrañas?", s.Flags.Migraines},
		{"Diabetes (antecedentes familiares)", s.Flags.DiabetesFamilyHistory},
	}

	sheets := []struct {
		name   string
		header [2]string
		rows   []row
	}{
		{"Perfil", [2]string{"Pregunta", "Respuesta"}, perfil},
		{"Estilo de Vida", [2]string{"Pregunta", "Respuesta"}, estilo},
		{"Metas", [2]string{"Pregunta", "Respuesta"}, metas},
		{"Composición", [2]string{"Indicador", "Valor"}, composicion},
		{"Condiciones", [2]string{"Condición", "Sí/No"}, condiciones},
	}

	for i, sh := range sheets {
		if err := writeSheet(f, sh.name, sh.header, sh.rows, i == 0); err != nil {
			f.Close()
			return nil, err
		}
	}

	if len(s.Referrals) > 0 {
		if err := writeReferrals(f, s.Referrals); err != nil {
			f.Close()
			return nil, err
		}
	}

	if s.Selected != nil {
		sel := []row{
			{"Programa elegido", s.Selected.Title},
			{"Items", strings.Join(s.Selected.DisplayItems, " + ")},
			{"Precio regular", s.Selected.RegularPrice},
			{"Descuento (%)", s.Selected.DiscountPercent},
			{"Precio final", s.Selected.FinalPrice},
			{"Moneda", cur},
		}
		if err := writeSheet(f, "Selección", [2]string{"Detalle", "Valor"}, sel, false); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// Filename returns the download name for a session's workbook.
func Filename(s *session.Session) string {
	name := strings.TrimSpace(s.Profile.Name)
	if name == "" {
		name = "usuario"
	}
	return fmt.Sprintf("Evaluacion_%s_%s.xlsx", s.Market().Code, name)
}

func writeSheet(f *excelize.File, name string, header [2]string, rows []row, first bool) error {
	if first {
		// Rename the default sheet instead of leaving an empty Sheet1.
		if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
			return fmt.Errorf("rename sheet %q: %w", name, err)
		}
	} else {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
	}

	if err := f.SetSheetRow(name, "A1", &[]any{header[0], header[1]}); err != nil {
		return fmt.Errorf("write header of %q: %w", name, err)
	}
	for i, r := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(name, cell, &[]any{r.key, r.value}); err != nil {
			return fmt.Errorf("write row %d of %q: %w", i, name, err)
		}
	}
	return nil
}

func writeReferrals(f *excelize.File, refs []session.Referral) error {
	const name = "Referidos"
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}
	if err := f.SetSheetRow(name, "A1", &[]any{"Nombre", "Teléfono", "Distrito", "Relación"}); err != nil {
		return fmt.Errorf("write header of %q: %w", name, err)
	}
	for i, r := range refs {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(name, cell, &[]any{r.Name, r.Phone, r.District, r.Relation}); err != nil {
			return fmt.Errorf("write row %d of %q: %w", i, name, err)
		}
	}
	return nil
}
