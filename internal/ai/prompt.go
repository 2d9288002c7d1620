package ai

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/ignatzorin/proworker-backend/internal/models"
)

// Intent — категория вопроса пользователя. От неё зависят температура
// генерации и стратегия ответа.
type Intent string

const (
	IntentComparison  Intent = "comparison"
	IntentFinancial   Intent = "financial"
	IntentPlanning    Intent = "planning"
	IntentPerformance Intent = "performance"
	IntentCoaching    Intent = "coaching"
	IntentGeneral     Intent = "general"
)

// Температуры генерации: коучинговые вопросы получают более свободный
// ответ, остальные — более детерминированный.
const (
	coachingTemperature = 0.5
	defaultTemperature  = 0.3
)

// Паттерны категорий проверяются строго по порядку: comparison, financial,
// planning, performance, coaching. Слово "better" попадает в comparison
// раньше, чем в coaching.
var intentPatterns = []struct {
	intent Intent
	re     *regexp.Regexp
}{
	{IntentComparison, regexp.MustCompile(`compare|vs|versus|against|better|worse|rank|ranking|position|where do i stand|how do i compare`)},
	{IntentFinancial, regexp.MustCompile(`rate|rating|earning|income|charge|pay|cost|money|profit|revenue|price`)},
	{IntentPlanning, regexp.MustCompile(`schedule|availability|slot|time|when|available|book`)},
	{IntentPerformance, regexp.MustCompile(`complete|order|cancel|reschedule|status|performance|feedback|quality|male|female|gender|profession|count`)},
	{IntentCoaching, regexp.MustCompile(`improve|grow|learn|better|skill|training|develop|tip|advice|suggest|help|boost`)},
}

// DetectQueryIntent определяет категорию вопроса по ключевым словам.
func DetectQueryIntent(question string) Intent {
	lower := strings.ToLower(question)
	for _, p := range intentPatterns {
		if p.re.MatchString(lower) {
			return p.intent
		}
	}
	return IntentGeneral
}

// Temperature возвращает температуру генерации для категории вопроса.
func (i Intent) Temperature() float64 {
	if i == IntentCoaching {
		return coachingTemperature
	}
	return defaultTemperature
}

// FallbackAnswer — ответ на случай, когда модель вернула пустой текст.
func FallbackAnswer(intent Intent) string {
	switch intent {
	case IntentFinancial:
		return "I'm having trouble retrieving your earnings data right now. Please try again in a moment."
	case IntentPlanning:
		return "I'm unable to access your schedule at the moment. Please check back soon."
	case IntentPerformance:
		return "I'm having trouble analyzing your performance data. Please try again."
	default:
		return "I'm having trouble processing your request right now. Please try again."
	}
}

// ratingComparison сравнивает рейтинг работника со средним по профессии.
type ratingComparison struct {
	MyRating      float64 `json:"my_rating"`
	ProfessionAvg float64 `json:"profession_avg"`
	AboveAverage  bool    `json:"above_average"`
	Difference    float64 `json:"difference"`
}

// orderComparison сравнивает объём заказов работника с популяцией.
// Rank отдаётся строкой, потому что неизвестная позиция кодируется как "N/A".
type orderComparison struct {
	MyTotal         int    `json:"my_total"`
	ProfessionPeers int    `json:"profession_peers"`
	Rank            string `json:"rank"`
	TotalWorkers    int    `json:"total_workers"`
}

type genderComparison struct {
	Distribution models.GenderDistribution `json:"distribution"`
	MyRank       string                    `json:"my_rank"`
}

type comparisonInsights struct {
	Rating         ratingComparison          `json:"rating"`
	Orders         orderComparison           `json:"orders"`
	GenderStats    genderComparison          `json:"gender_stats"`
	TopProfessions []models.ProfessionDemand `json:"top_professions"`
	MonthlyTrend   any                       `json:"monthly_trend"`
}

// monthlyTrend — динамика заказов между двумя последними месяцами.
type monthlyTrend struct {
	CurrentMonth   string `json:"current_month"`
	CurrentOrders  int    `json:"current_orders"`
	PreviousOrders int    `json:"previous_orders"`
	Change         int    `json:"change"`
	PercentChange  int    `json:"percent_change"`
	Trend          string `json:"trend"`
}

// Средний рейтинг по умолчанию, когда по профессии нет данных.
const fallbackProfessionRating = 4.0

// rankString рендерит позицию для модели: неизвестная позиция — "N/A".
func rankString(r models.Rank) string {
	if !r.Known() {
		return "N/A"
	}
	return fmt.Sprintf("%d", int(r))
}

// buildComparison собирает сравнительный блок для промпта.
func buildComparison(wc *models.WorkerContext) comparisonInsights {
	professionAvg := wc.Analytics.ProfessionStats.AvgRating
	if professionAvg == 0 {
		professionAvg = fallbackProfessionRating
	}

	top := wc.Analytics.TopProfessions
	if len(top) > 3 {
		top = top[:3]
	}

	return comparisonInsights{
		Rating: ratingComparison{
			MyRating:      wc.Profile.Rating,
			ProfessionAvg: professionAvg,
			AboveAverage:  wc.Profile.Rating > professionAvg,
			Difference:    math.Round((wc.Profile.Rating-professionAvg)*100) / 100,
		},
		Orders: orderComparison{
			MyTotal:         wc.OrderSummary.Total,
			ProfessionPeers: wc.Analytics.ProfessionStats.TotalPeers,
			Rank:            rankString(wc.Analytics.Rank.ByOrders),
			TotalWorkers:    wc.Analytics.Rank.TotalWorkers,
		},
		GenderStats: genderComparison{
			Distribution: wc.Analytics.GenderStats.Distribution,
			MyRank:       rankString(wc.Analytics.GenderStats.MyRankInGender),
		},
		TopProfessions: top,
		MonthlyTrend:   buildMonthlyTrend(wc),
	}
}

// buildMonthlyTrend считает динамику по двум последним месяцам истории.
// Если истории меньше двух месяцев, возвращает строку "insufficient_data".
func buildMonthlyTrend(wc *models.WorkerContext) any {
	months := wc.MonthlyHistory
	if len(months) < 2 {
		return "insufficient_data"
	}

	current := months[0].TotalOrders
	previous := months[1].TotalOrders
	change := current - previous

	var percentChange int
	if previous == 0 {
		if current > 0 {
			percentChange = 100
		}
	} else {
		percentChange = int(math.Round(float64(change) / float64(previous) * 100))
	}

	trend := "stable"
	if current > previous {
		trend = "improving"
	} else if current < previous {
		trend = "declining"
	}

	return monthlyTrend{
		CurrentMonth:   months[0].MonthName,
		CurrentOrders:  current,
		PreviousOrders: previous,
		Change:         change,
		PercentChange:  percentChange,
		Trend:          trend,
	}
}

// BuildMessages собирает system+user сообщения для chat completion по
// вопросу и контексту работника.
func BuildMessages(question string, wc *models.WorkerContext) ([]map[string]string, error) {
	intent := DetectQueryIntent(question)
	comparison := buildComparison(wc)

	system := buildSystemInstruction(wc, comparison)

	dataContext, err := buildDataContext(wc, comparison)
	if err != nil {
		return nil, err
	}

	user := fmt.Sprintf(`CONTEXT DATA (JSON):
%s

USER QUESTION:
%q

Query Intent: %s

IMPORTANT INSTRUCTIONS:
1. Use comparison_insights data to provide ranking and comparison context
2. If user asks about rank, use the order data from comparison_insights
3. If user asks about gender distribution, calculate percentages: (count / total * 100)
4. For monthly comparisons, use monthly_trend from comparison_insights
5. Always provide specific numbers and actionable insights
6. For missing data, suggest what you CAN tell them instead
7. CRITICAL: NEVER claim to have data you haven't been given in the JSON context
8. NEVER make up or assume data - if location is null, don't mention it
9. NEVER confirm data exists unless you can see it in the provided context
10. If a field is null/missing/empty, ignore it - don't acknowledge its absence unless directly asked

Please analyze the JSON data to answer the user's question. Adhere strictly to the RESPONSE FORMAT RULES and use the %s-specific strategies if applicable.`,
		dataContext, question, strings.ToUpper(string(intent)), strings.ToUpper(string(intent)))

	return []map[string]string{
		{"role": "system", "content": system},
		{"role": "user", "content": user},
	}, nil
}

func buildSystemInstruction(wc *models.WorkerContext, comparison comparisonInsights) string {
	language := "English"
	if wc.Settings != nil && wc.Settings.AppLanguage != "" {
		language = wc.Settings.AppLanguage
	}

	var demands []string
	for _, p := range comparison.TopProfessions {
		demands = append(demands, fmt.Sprintf("%s (%d orders)", p.Profession, p.OrderCount))
	}

	ratingStatus := "BELOW AVERAGE - room to improve"
	if comparison.Rating.AboveAverage {
		ratingStatus = "ABOVE AVERAGE"
	}

	diff := fmt.Sprintf("%.2f", comparison.Rating.Difference)
	if comparison.Rating.Difference > 0 {
		diff = "+" + diff
	}

	trendBlock := "Change: N/A\n   - Trend: INSUFFICIENT DATA"
	if trend, ok := comparison.MonthlyTrend.(monthlyTrend); ok {
		change := fmt.Sprintf("%d", trend.Change)
		if trend.Change > 0 {
			change = "+" + change
		}
		trendBlock = fmt.Sprintf("Current month: %d orders\n   - Previous month: %d orders\n   - Change: %s (%d%%)\n   - Trend: %s",
			trend.CurrentOrders, trend.PreviousOrders, change, trend.PercentChange, strings.ToUpper(trend.Trend))
	}

	return fmt.Sprintf(`You are ProWorker AI Assistant. You are the worker's personal, sweet, and helpful guide.

CORE PERSONALITY & TONE
- Tone: Sweet, Short, Encouraging, and Practical
- Goal: Help the worker understand their performance and grow their career
- Privacy: Strict adherence to privacy - never share system-wide data publicly
- Language: %s

GREETING & CONVERSATION RULES
- If user says ONLY "Hi", "Hello", "Good morning", "Hey": Respond
"I am your personal AI assistant.
I can assist you with your information like order, rating, review, schedule, etc.
I will happy to help you"
- If a greeting is paired with a question: Answer the question, don't repeat the greeting
- Keep context of conversation: Don't repeat previous answers unnecessarily
- Be natural and conversational, not robotic

SMART COMPARISON & RANKING LOGIC

WHEN USER ASKS FOR COMPARISONS:
1. Rating Comparison:
   - My rating: %.2f
   - Profession average: %.2f
   - Status: %s
   - Difference: %s

2. Order Count Comparison:
   - My total orders: %d
   - My profession peers: %d
   - My rank: %s out of %d
   - Interpretation: If rank is 1, I'm the top. If rank is close to total, room to grow.

3. Gender Distribution:
   - Males in profession: %d
   - Females in profession: %d
   - Others in profession: %d
   - My gender rank: %s

4. Monthly Trend Analysis:
   - %s

5. Profession Demand Ranking:
   - Top professions by order volume: %s

QUERY-SPECIFIC RESPONSE STRATEGIES

PERFORMANCE QUERIES (orders, ratings, completion, feedback):
  - Focus on: order_summary, recent_orders, reviews, monthly_analytics, gender_distribution
  - Always include: current stats + trends + comparisons when relevant

COMPARISON QUERIES (compare, rank, vs, better, worse):
  - Use comparison data heavily
  - Provide rankings where available
  - Explain what the rank means (1=best)
  - Always be encouraging even with lower ranks

PLANNING QUERIES (schedule, availability, slots):
  - Focus on: week_schedule, monthly_analytics (for busy patterns)
  - Show when you're busiest vs available

FINANCIAL QUERIES (earnings, rates, revenue):
  - Show: charges_perhour, charges_pervisit, estimated_earnings
  - Calculate estimated earnings at the current rate

COACHING QUERIES (improve, grow, skills):
  - Acknowledge current numbers, then give action-focused tips based on actual gaps

DATA INTERPRETATION RULES
1. GENDER QUERIES: report exact counts from gender_stats.distribution and calculate percentages
2. RANKING QUERIES: use rank from analytics.rank.by_orders or analytics.rank.by_score and explain it as "#N out of M"
3. MONTHLY DATA: match the user's month against monthly_analytics entries by month_name and year
4. TRENDING: use monthly_trend from comparison_insights
5. LOCATION: NEVER share coordinates

RESPONSE FORMAT RULES
- Length: 2-4 sentences for queries, 5-7 for analysis with comparisons
- Numbers: always use "85%%" not "0.85", round to whole numbers
- Tone: Positive + Practical. If low stats, pair with specific improvement tips

CRITICAL RULES - STRICT DATA VALIDATION
- If rank is missing, DON'T make up a rank
- If gender data missing, DON'T guess at numbers
- Always acknowledge incomplete data gracefully
- Be specific: "2 more completed orders" not "do better"

CRITICAL RULES - PREVENT FALSE DATA CLAIMS
- NEVER claim to have data you haven't been given
- When data is null or missing, say "I don't have that information" instead of making it up
- For null values: skip them entirely unless asked directly`,
		language,
		comparison.Rating.MyRating, comparison.Rating.ProfessionAvg, ratingStatus, diff,
		comparison.Orders.MyTotal, comparison.Orders.ProfessionPeers, comparison.Orders.Rank, comparison.Orders.TotalWorkers,
		comparison.GenderStats.Distribution.Male, comparison.GenderStats.Distribution.Female,
		comparison.GenderStats.Distribution.Other, comparison.GenderStats.MyRank,
		trendBlock,
		strings.Join(demands, ", "),
	)
}

// buildDataContext сериализует контекст работника для промпта: профиль без
// контактов, последние отзывы и заказы, укороченная история по месяцам.
func buildDataContext(wc *models.WorkerContext, comparison comparisonInsights) (string, error) {
	completionRate := 0
	if wc.OrderSummary.Total > 0 {
		completionRate = int(math.Round(float64(wc.OrderSummary.Completed) / float64(wc.OrderSummary.Total) * 100))
	}

	avgMonthlyOrders := 0
	if len(wc.MonthlyHistory) > 0 {
		sum := 0
		for _, m := range wc.MonthlyHistory {
			sum += m.TotalOrders
		}
		avgMonthlyOrders = int(math.Round(float64(sum) / float64(len(wc.MonthlyHistory))))
	}

	trend := "stable"
	if len(wc.MonthlyHistory) >= 2 {
		if wc.MonthlyHistory[0].TotalOrders >= wc.MonthlyHistory[1].TotalOrders {
			trend = "increasing"
		} else {
			trend = "decreasing"
		}
	}

	type reviewEntry struct {
		Client  string `json:"client"`
		Comment string `json:"comment"`
	}
	reviews := make([]reviewEntry, 0, 5)
	for _, r := range wc.Reviews {
		if len(reviews) == 5 {
			break
		}
		reviews = append(reviews, reviewEntry{Client: r.Name, Comment: r.Comment})
	}

	type orderEntry struct {
		Date   string `json:"date"`
		Client string `json:"client"`
		Status string `json:"status"`
	}
	recentOrders := make([]orderEntry, 0, 5)
	for _, o := range wc.Orders {
		if len(recentOrders) == 5 {
			break
		}
		recentOrders = append(recentOrders, orderEntry{
			Date:   o.Date.Format("2006-01-02"),
			Client: o.ClientName,
			Status: o.StatusName,
		})
	}

	history := wc.MonthlyHistory
	if len(history) > 6 {
		history = history[:6]
	}

	payload := map[string]any{
		"my_profile": map[string]any{
			"name":             wc.Profile.Name,
			"profession":       wc.Profile.Profession,
			"gender":           wc.Profile.Gender,
			"current_rating":   wc.Profile.Rating,
			"charges_perhour":  wc.Profile.ChargesPerHour,
			"charges_pervisit": wc.Profile.ChargesPerVisit,
		},
		"settings":          wc.Settings,
		"location":          wc.Location,
		"reviews":           reviews,
		"week_schedule":     wc.WeekSchedule,
		"analytics":         wc.Analytics,
		"monthly_analytics": history,
		"performance_metrics": map[string]any{
			"total_orders":       wc.OrderSummary.Total,
			"completed_orders":   wc.OrderSummary.Completed,
			"cancelled_orders":   wc.OrderSummary.Cancelled,
			"pending_orders":     wc.OrderSummary.Pending,
			"rescheduled_orders": wc.OrderSummary.Rescheduled,
			"completion_rate":    fmt.Sprintf("%d%%", completionRate),
			"avg_monthly_orders": avgMonthlyOrders,
			"trend":              trend,
		},
		"comparison_insights": comparison,
		"performance_summary": wc.OrderSummary,
		"recent_orders":       recentOrders,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
