package charts

const (
	// ChartHeightRatio determines chart height as width/ChartHeightRatio.
	ChartHeightRatio = 8

	// MinChartHeight is the floor for timeseries chart height.
	MinChartHeight = 8

	// DefaultChartWidth is used when no terminal is attached.
	DefaultChartWidth = 80
)
