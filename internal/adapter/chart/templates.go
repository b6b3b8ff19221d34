package chart

// Config is a Chart.js configuration document. It is built as a plain map
// because the QuickChart API consumes arbitrary Chart.js JSON and options
// differ per chart type.
type Config map[string]interface{}

var pieColors = []string{
	"rgba(255, 99, 132, 0.7)",
	"rgba(54, 162, 235, 0.7)",
	"rgba(75, 192, 192, 0.7)",
	"rgba(255, 206, 86, 0.7)",
	"rgba(153, 102, 255, 0.7)",
	"rgba(255, 159, 64, 0.7)",
	"rgba(199, 199, 199, 0.7)",
	"rgba(83, 102, 255, 0.7)",
	"rgba(102, 255, 83, 0.7)",
}

// PieConfig builds a pie chart with one slice per label.
func PieConfig(title string, labels []string, data []int) Config {
	return Config{
		"type": "pie",
		"data": map[string]interface{}{
			"labels": labels,
			"datasets": []map[string]interface{}{{
				"data":            data,
				"backgroundColor": pieColors,
				"borderColor":     "rgba(255, 255, 255, 0.1)",
				"borderWidth":     1,
			}},
		},
		"options": map[string]interface{}{
			"responsive": true,
			"plugins": map[string]interface{}{
				"legend": map[string]interface{}{
					"position": "top",
					"labels": map[string]interface{}{
						"font":    map[string]interface{}{"size": 10},
						"padding": 10,
					},
				},
				"title": titlePlugin(title),
				"datalabels": map[string]interface{}{
					"display": true,
					"color":   "white",
					"font": map[string]interface{}{
						"weight": "bold",
						"size":   10,
					},
					"formatter": "(value, ctx) => { return value; }",
				},
			},
		},
	}
}

// BarConfig builds a single-series bar chart.
func BarConfig(title, seriesLabel string, labels []string, data []int) Config {
	return Config{
		"type": "bar",
		"data": map[string]interface{}{
			"labels": labels,
			"datasets": []map[string]interface{}{{
				"label":           seriesLabel,
				"data":            data,
				"backgroundColor": "rgba(75, 192, 192, 0.7)",
				"borderColor":     "rgba(75, 192, 192, 1)",
				"borderWidth":     1,
			}},
		},
		"options": map[string]interface{}{
			"responsive": true,
			"plugins": map[string]interface{}{
				"legend": map[string]interface{}{
					"display":  true,
					"position": "top",
				},
				"title": titlePlugin(title),
			},
			"scales": map[string]interface{}{
				"yAxes": []map[string]interface{}{{
					"ticks": map[string]interface{}{
						"beginAtZero": true,
						"stepSize":    1,
					},
				}},
				"xAxes": []map[string]interface{}{{
					"ticks": map[string]interface{}{
						"font": map[string]interface{}{"size": 10},
					},
				}},
			},
		},
	}
}

// LineConfig builds a single-series filled line chart.
func LineConfig(title, seriesLabel string, labels []string, data []int) Config {
	return Config{
		"type": "line",
		"data": map[string]interface{}{
			"labels": labels,
			"datasets": []map[string]interface{}{{
				"label":           seriesLabel,
				"data":            data,
				"borderColor":     "rgba(54, 162, 235, 0.9)",
				"backgroundColor": "rgba(54, 162, 235, 0.2)",
				"fill":            true,
				"tension":         0.1,
			}},
		},
		"options": map[string]interface{}{
			"responsive": true,
			"plugins": map[string]interface{}{
				"legend": map[string]interface{}{
					"display":  true,
					"position": "top",
				},
				"title": titlePlugin(title),
			},
			"scales": map[string]interface{}{
				"yAxes": []map[string]interface{}{{
					"ticks": map[string]interface{}{"beginAtZero": true},
				}},
				"xAxes": []map[string]interface{}{{
					"ticks": map[string]interface{}{
						"font": map[string]interface{}{"size": 10},
					},
				}},
			},
		},
	}
}

func titlePlugin(text string) map[string]interface{} {
	return map[string]interface{}{
		"display": true,
		"text":    text,
		"font":    map[string]interface{}{"size": 14},
		"padding": map[string]interface{}{"top": 10, "bottom": 15},
	}
}
