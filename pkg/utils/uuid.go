package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// metricIDLength dá espaço de chave suficiente para identificadores gerados
// a cada importação, sem coordenação entre execuções.
const metricIDLength = 21

func GenerateMetricID() (string, error) {
	return gonanoid.Generate(characters, metricIDLength)
}
