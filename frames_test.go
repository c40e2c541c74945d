package featkit_test

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

func animalFrame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]string{"dog", "cat", "monkey"}, series.String, "animal"),
		series.New([]int{4, 4, 2}, series.Int, "num_legs"),
		series.New([]int{0, 0, 2}, series.Int, "num_arms"),
	)
}

func multiFrames() (dataframe.DataFrame, dataframe.DataFrame) {
	df1 := dataframe.New(
		series.New([]string{"dog", "cat", "monkey", "lizard"}, series.String, "animal"),
		series.New([]int{4, 4, 2, 4}, series.Int, "num_legs"),
		series.New([]int{0, 0, 2, 0}, series.Int, "num_arms"),
		series.New([]string{"mammal", "mammal", "mammal", "reptile"}, series.String, "type"),
	)
	df2 := dataframe.New(
		series.New([]string{"mammal", "reptile", "insect"}, series.String, "type"),
		series.New([]string{"warm", "cold", "idk"}, series.String, "blood_temp"),
		series.New([]string{"live", "eggs", "eggs"}, series.String, "birth_type"),
	)
	return df1, df2
}

func hourlyFrame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]string{
			"2018-01-01 00:00:00",
			"2018-01-01 01:00:00",
			"2018-01-01 02:00:00",
			"2018-01-01 03:00:00",
			"2018-01-01 04:00:00",
		}, series.String, "timestamp"),
		series.New([]int{0, 1, 2, 3, 4}, series.Int, "numbers"),
	)
}
