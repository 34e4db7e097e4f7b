package catalog

var letters = []Letter{
	{Char: 'A', Word: "Apple", Image: "/red-apple-fruit.png", Color: "#ef4444", Animation: AnimationBounce},
	{Char: 'B', Word: "Ball", Image: "/colorful-bouncing-ball.jpg", Color: "#3b82f6", Animation: AnimationSwing},
	{Char: 'C', Word: "Cat", Image: "/cute-orange-cat.png", Color: "#f97316", Animation: AnimationPop},
	{Char: 'D', Word: "Dog", Image: "/friendly-brown-dog.jpg", Color: "#8b5cf6", Animation: AnimationBounce},
	{Char: 'E', Word: "Elephant", Image: "/gray-elephant.jpg", Color: "#06b6d4", Animation: AnimationSwing},
	{Char: 'F', Word: "Fish", Image: "/colorful-tropical-fish.png", Color: "#10b981", Animation: AnimationPop},
	{Char: 'G', Word: "Giraffe", Image: "/tall-giraffe.jpg", Color: "#f59e0b", Animation: AnimationBounce},
	{Char: 'H', Word: "House", Image: "/colorful-house.jpg", Color: "#ec4899", Animation: AnimationSwing},
	{Char: 'I', Word: "Ice Cream", Image: "/colorful-ice-cream-cone.jpg", Color: "#8b5cf6", Animation: AnimationPop},
	{Char: 'J', Word: "Jellyfish", Image: "/translucent-jellyfish.jpg", Color: "#06b6d4", Animation: AnimationBounce},
	{Char: 'K', Word: "Kite", Image: "/colorful-diamond-kite.jpg", Color: "#ef4444", Animation: AnimationSwing},
	{Char: 'L', Word: "Lion", Image: "/majestic-lion.jpg", Color: "#f97316", Animation: AnimationPop},
	{Char: 'M', Word: "Moon", Image: "/crescent-moon.png", Color: "#facc15", Animation: AnimationBounce},
	{Char: 'N', Word: "Nest", Image: "/bird-nest-with-eggs.jpg", Color: "#10b981", Animation: AnimationSwing},
	{Char: 'O', Word: "Octopus", Image: "/purple-octopus.jpg", Color: "#8b5cf6", Animation: AnimationPop},
	{Char: 'P', Word: "Penguin", Image: "/cute-penguin.jpg", Color: "#3b82f6", Animation: AnimationBounce},
	{Char: 'Q', Word: "Queen", Image: "/royal-queen-crown.jpg", Color: "#ec4899", Animation: AnimationSwing},
	{Char: 'R', Word: "Rainbow", Image: "/colorful-rainbow.jpg", Color: "#ef4444", Animation: AnimationPop},
	{Char: 'S', Word: "Sun", Image: "/bright-yellow-sun.jpg", Color: "#facc15", Animation: AnimationBounce},
	{Char: 'T', Word: "Tree", Image: "/placeholder.svg?height=256&width=256", Color: "#10b981", Animation: AnimationSwing},
	{Char: 'U', Word: "Umbrella", Image: "/placeholder.svg?height=256&width=256", Color: "#06b6d4", Animation: AnimationPop},
	{Char: 'V', Word: "Violin", Image: "/placeholder.svg?height=256&width=256", Color: "#8b5cf6", Animation: AnimationBounce},
	{Char: 'W', Word: "Whale", Image: "/placeholder.svg?height=256&width=256", Color: "#3b82f6", Animation: AnimationSwing},
	{Char: 'X', Word: "Xylophone", Image: "/placeholder.svg?height=256&width=256", Color: "#f97316", Animation: AnimationPop},
	{Char: 'Y', Word: "Yacht", Image: "/placeholder.svg?height=256&width=256", Color: "#06b6d4", Animation: AnimationBounce},
	{Char: 'Z', Word: "Zebra", Image: "/placeholder.svg?height=256&width=256", Color: "#374151", Animation: AnimationSwing},
}
