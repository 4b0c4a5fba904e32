package bq

var ToSaversForTest = toSavers
