package catalog

var defaultProducts = []Product{
	{ID: "feat1", Name: "23 Legends Hoodie", Image: "./jwallp.jpeg", Price: "$99.99", Category: "featured"},
	{ID: "feat2", Name: "Louis Vuitton Shoes", Image: "./m1.jpeg", Price: "$199.99", Category: "featured"},
	{ID: "feat3", Name: "Ladies Gem Collection", Image: "./Hot Soft Women's….jpeg", Price: "$149.99", Category: "featured"},

	{ID: "new1", Name: "JORDANS 13 Retr", Image: "./13 Retr.jpeg", Price: "$67.20", Category: "new arrivals"},
	{ID: "new2", Name: "Men's Letter Print Long Sleeve Drawstring Casual Hoodie", Image: "./Men's Letter Print Long Sleeve Drawstring Casual….jpeg", Price: "$89.00", Category: "new arrivals"},
	{ID: "new3", Name: "JORDANS m2", Image: "./m2.jpeg", Price: "$120.00", Category: "new arrivals"},
	{ID: "new4", Name: "Blouse wc2", Image: "./wc2.jpeg", Price: "$90.00", Category: "new arrivals"},
	{ID: "new5", Name: "Sweatpants wc1", Image: "./wc1.jpeg", Price: "$86.99", Category: "new arrivals"},
	{ID: "new6", Name: "New Arrival Men's American Baseball Jacket", Image: "./New Arrival Men's American Baseball Jacket….jpeg", Price: "$120.00", Category: "new arrivals"},

	{ID: "men1", Name: "Snikers mHigh-Top L", Image: "./mHigh-Top L.jpeg", Price: "$130.00", Category: "men"},
	{ID: "men2", Name: "Men's T-Shirt", Image: "./Men t shirt.jpeg", Price: "$67.00", Category: "men"},
	{ID: "men3", Name: "Snikers Painted AF1 Shoes", Image: "./Painted AF1 Shoes -.jpeg", Price: "$119.99", Category: "men"},

	{ID: "women1", Name: "Women's Skirt", Image: "./Women's skirt.jpeg", Price: "$40.00", Category: "women"},
	{ID: "women2", Name: "Women's Shoes w2", Image: "./w2.jpeg", Price: "$54.00", Category: "women"},
	{ID: "women3", Name: "Women's Dress", Image: "./Women's Dress.jpeg", Price: "$145.00", Category: "women"},

	{ID: "men_p1", Name: "Men T-Shirt", Image: "./Men t shirt.jpeg", Price: "$35.00", Category: "men"},
	{ID: "men_p2", Name: "Men's Jeans", Image: "./Men's Straight Tube.jpeg", Price: "$75.00", Category: "men"},
	{ID: "men_p3", Name: "Men's Jacket", Image: "./New Arrival Men's American Baseball Jacket….jpeg", Price: "$120.00", Category: "men"},
	{ID: "men_p4", Name: "Men's Hoodie", Image: "./Men's Letter Print Long Sleeve Drawstring Casual….jpeg", Price: "$60.00", Category: "men"},
	{ID: "men_p5", Name: "Men's Shorts", Image: "./men shorts.jpeg", Price: "$40.00", Category: "men"},
	{ID: "men_p6", Name: "Men's Sweatshirt", Image: "./Men's Sweatshirt.jpeg", Price: "$55.00", Category: "men"},

	{ID: "women_p1", Name: "Women's Dress", Image: "./Women's Dress.jpeg", Price: "$80.00", Category: "women"},
	{ID: "women_p2", Name: "Women's Skirt", Image: "./Women's skirt.jpeg", Price: "$45.00", Category: "women"},
	{ID: "women_p3", Name: "Women's Blouse", Image: "./Women's Blouse.jpeg", Price: "$50.00", Category: "women"},
	{ID: "women_p4", Name: "Women's Pants", Image: "./Women's Pants.jpeg", Price: "$70.00", Category: "women"},
	{ID: "women_p5", Name: "Women's Sweater", Image: "./Women's Sweater.jpeg", Price: "$65.00", Category: "women"},
	{ID: "women_p6", Name: "Women's Jumpsuit", Image: "./Women's Jumpsuit.jpeg", Price: "$90.00", Category: "women"},

	{ID: "sneak1", Name: "Nike Air", Image: "./Ou Gray Blue.jpeg", Price: "$120.50", Category: "sneakers"},
	{ID: "sneak2", Name: "Sport Runner Sneakers", Image: "./sports.jpeg", Price: "$110.00", Category: "sneakers"},
	{ID: "sneak3", Name: "High-Top Vintage Sneakers", Image: "./mHigh-Top L.jpeg", Price: "$130.00", Category: "sneakers"},
	{ID: "sneak4", Name: "Casual Canvas Sneakers", Image: "./Men, Canvas.jpeg", Price: "$70.00", Category: "sneakers"},
	{ID: "sneak5", Name: "Lifestyle Knit Sneakers", Image: "./Hot Soft Women's….jpeg", Price: "$100.00", Category: "sneakers"},
	{ID: "sneak6", Name: "Retro Jogger Sneakers", Image: "./retro.jpeg", Price: "$95.00", Category: "sneakers"},
}
