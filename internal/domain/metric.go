package domain

import "time"

// MetricValueType indica como o valor da métrica deve ser formatado no dashboard.
type MetricValueType string

const (
	ValueTypePlain      MetricValueType = "plain"
	ValueTypeCurrency   MetricValueType = "currency"
	ValueTypePercentage MetricValueType = "percentage"
	ValueTypeDays       MetricValueType = "days"
	ValueTypeMonths     MetricValueType = "months"
)

// valueTypeBySource mapeia o conteúdo da coluna "Value Type" para o tipo
// canônico. A consulta diferencia maiúsculas de minúsculas: qualquer grafia
// fora da tabela, inclusive "Currency", cai no padrão plain.
var valueTypeBySource = map[string]MetricValueType{
	"PLAIN":      ValueTypePlain,
	"plain":      ValueTypePlain,
	"CURRENCY":   ValueTypeCurrency,
	"PERCENTAGE": ValueTypePercentage,
	"DAYS":       ValueTypeDays,
	"MONTHS":     ValueTypeMonths,
}

// ParseMetricValueType traduz o texto da planilha para um MetricValueType,
// assumindo plain quando o texto não é reconhecido.
func ParseMetricValueType(raw string) MetricValueType {
	if valueType, ok := valueTypeBySource[raw]; ok {
		return valueType
	}

	return ValueTypePlain
}

// DashboardGroup é a seção do dashboard em que a métrica aparece.
type DashboardGroup string

const (
	GroupPrimaryMetrics   DashboardGroup = "Primary Metrics"
	GroupSalesMetrics     DashboardGroup = "Sales Metrics"
	GroupTrafficMetrics   DashboardGroup = "Traffic Metrics"
	GroupFinancialMetrics DashboardGroup = "Financial Metrics"
	GroupCustomerMetrics  DashboardGroup = "Customer Metrics"
	GroupSecondaryMetrics DashboardGroup = "Secondary Metrics"
)

var recognizedGroups = map[string]DashboardGroup{
	string(GroupPrimaryMetrics):   GroupPrimaryMetrics,
	string(GroupSalesMetrics):     GroupSalesMetrics,
	string(GroupTrafficMetrics):   GroupTrafficMetrics,
	string(GroupFinancialMetrics): GroupFinancialMetrics,
	string(GroupCustomerMetrics):  GroupCustomerMetrics,
	string(GroupSecondaryMetrics): GroupSecondaryMetrics,
}

// ParseDashboardGroup traduz o texto da planilha para um DashboardGroup,
// assumindo Secondary Metrics quando o grupo não é reconhecido.
func ParseDashboardGroup(raw string) DashboardGroup {
	if group, ok := recognizedGroups[raw]; ok {
		return group
	}

	return GroupSecondaryMetrics
}

// MetricRecord é a forma canônica de uma métrica pronta para persistência na
// tabela dashboard_metrics. Campos sem validação de presença permanecem como
// ponteiros: a ausência segue até o banco, que decide aceitá-la ou não.
type MetricRecord struct {
	ID               string          `json:"id"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        *time.Time      `json:"deleted_at"`
	Name             *string         `json:"name"`
	Order            *int            `json:"order"`
	IsTopDial        bool            `json:"is_top_dial"`
	MetricValueQuery *string         `json:"metric_value_query"`
	DetailsQuery     *string         `json:"details_query"`
	LeaderboardQuery string          `json:"leaderboard_query"`
	MetricValueType  MetricValueType `json:"metric_value_type"`
	GroupName        DashboardGroup  `json:"group_name"`
	Description      *string         `json:"description"`
}
