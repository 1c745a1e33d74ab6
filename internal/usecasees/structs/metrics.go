package structs

type MetricConst string

const (
	MetricTradeClosed   MetricConst = "recifi_trade_closed_total"
	MetricTradeFailed   MetricConst = "recifi_trade_failed_total"
	MetricTradeReopened MetricConst = "recifi_trade_reopened_total"
	MetricPriceTicks    MetricConst = "recifi_price_ticks_total"
)

func (m MetricConst) ToString() string {
	return string(m)
}
